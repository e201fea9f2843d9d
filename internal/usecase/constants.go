package usecase

const (
	// SnapshotKeyBalance is the snapshot key holding the wallet balance,
	// stored as a JSON numeric string.
	SnapshotKeyBalance = "walletBalance"

	// SnapshotKeyExpenses is the snapshot key holding the expense list,
	// stored as a JSON array of expense records.
	SnapshotKeyExpenses = "expenses"
)

// DefaultBalance seeds a wallet that has no usable snapshot.
const DefaultBalance = 5000
