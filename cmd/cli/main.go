package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gowallet-cli",
		Short: "GoWallet CLI tool",
		Long:  `A command line interface for interacting with the GoWallet API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoWallet API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Wallet commands
	balanceCmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the wallet balance",
		Run: func(cmd *cobra.Command, args []string) {
			showBalance()
		},
	}

	incomeCmd := &cobra.Command{
		Use:   "income <amount>",
		Short: "Add income to the wallet",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			addIncome(args[0])
		},
	}

	// Expense commands
	expenseCmd := &cobra.Command{
		Use:   "expense",
		Short: "Expense operations",
	}

	var (
		expenseTitle    string
		expensePrice    string
		expenseCategory string
		expenseDate     string
	)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Run: func(cmd *cobra.Command, args []string) {
			addExpense(expenseTitle, expensePrice, expenseCategory, expenseDate)
		},
	}
	addCmd.Flags().StringVar(&expenseTitle, "title", "", "Expense title")
	addCmd.Flags().StringVar(&expensePrice, "price", "", "Expense price")
	addCmd.Flags().StringVar(&expenseCategory, "category", "", "Expense category")
	addCmd.Flags().StringVar(&expenseDate, "date", "", "Expense date (YYYY-MM-DD)")
	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("price")

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing expense",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			editExpense(args[0], expenseTitle, expensePrice, expenseCategory, expenseDate)
		},
	}
	editCmd.Flags().StringVar(&expenseTitle, "title", "", "Expense title")
	editCmd.Flags().StringVar(&expensePrice, "price", "", "Expense price")
	editCmd.Flags().StringVar(&expenseCategory, "category", "", "Expense category")
	editCmd.Flags().StringVar(&expenseDate, "date", "", "Expense date (YYYY-MM-DD)")

	var skipConfirm bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense and refund its amount",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if !skipConfirm && !confirm(os.Stdin, fmt.Sprintf("Delete expense %s?", args[0])) {
				fmt.Println("Aborted.")
				return
			}
			deleteExpense(args[0])
		},
	}
	deleteCmd.Flags().BoolVar(&skipConfirm, "yes", false, "Skip the confirmation prompt")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded expenses",
		Run: func(cmd *cobra.Command, args []string) {
			listExpenses()
		},
	}

	expenseCmd.AddCommand(addCmd, editCmd, deleteCmd, listCmd)

	// Report commands
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Show spending grouped by category",
		Run: func(cmd *cobra.Command, args []string) {
			showReport()
		},
	}

	rootCmd.AddCommand(balanceCmd, incomeCmd, expenseCmd, reportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func confirm(in io.Reader, prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(in)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func showBalance() {
	body := doRequest(http.MethodGet, "/api/v1/wallet", nil)

	var result struct {
		Balance json.Number `json:"balance"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wallet Balance: %s\n", result.Balance)
}

func addIncome(amount string) {
	payload := map[string]string{"amount": amount}
	body := doRequest(http.MethodPost, "/api/v1/wallet/income", payload)

	var result struct {
		Balance json.Number `json:"balance"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Income added. New balance: %s\n", result.Balance)
}

func addExpense(title, price, category, date string) {
	payload := map[string]string{
		"title":    title,
		"price":    price,
		"category": category,
		"date":     date,
	}
	body := doRequest(http.MethodPost, "/api/v1/expenses", payload)

	var result struct {
		Expense struct {
			ID string `json:"id"`
		} `json:"expense"`
		Balance json.Number `json:"balance"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Expense recorded (id: %s). Remaining balance: %s\n", result.Expense.ID, result.Balance)
}

func editExpense(id, title, price, category, date string) {
	payload := map[string]string{
		"title":    title,
		"price":    price,
		"category": category,
		"date":     date,
	}
	body := doRequest(http.MethodPut, "/api/v1/expenses/"+id, payload)

	var result struct {
		Balance json.Number `json:"balance"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Expense updated. Balance: %s\n", result.Balance)
}

func deleteExpense(id string) {
	body := doRequest(http.MethodDelete, "/api/v1/expenses/"+id, nil)

	var result struct {
		Balance json.Number `json:"balance"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Expense deleted. Balance: %s\n", result.Balance)
}

func listExpenses() {
	body := doRequest(http.MethodGet, "/api/v1/expenses", nil)

	var result struct {
		Expenses []struct {
			ID       string      `json:"id"`
			Title    string      `json:"title"`
			Price    json.Number `json:"price"`
			Category string      `json:"category"`
			Date     string      `json:"date"`
		} `json:"expenses"`
		Total json.Number `json:"total"`
		Count int         `json:"count"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if result.Count == 0 {
		fmt.Println("No expenses recorded.")
		return
	}

	for _, e := range result.Expenses {
		fmt.Printf("%s  %-30s %10s  %-14s %s\n", e.ID, e.Title, e.Price, e.Category, e.Date)
	}
	fmt.Printf("\n%d expense(s), total %s\n", result.Count, result.Total)
}

var reportColors = []*color.Color{
	color.New(color.FgMagenta),
	color.New(color.FgYellow),
	color.New(color.FgHiYellow),
	color.New(color.FgGreen),
	color.New(color.FgBlue),
}

func showReport() {
	body := doRequest(http.MethodGet, "/api/v1/reports/categories", nil)

	var result struct {
		Categories []struct {
			Category string      `json:"category"`
			Total    json.Number `json:"total"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if len(result.Categories) == 0 {
		fmt.Println("No spending to report.")
		return
	}

	fmt.Println("Spending by category:")
	for i, c := range result.Categories {
		line := reportColors[i%len(reportColors)].Sprintf("%-14s %s", c.Category, c.Total)
		fmt.Printf("  %s\n", line)
	}
}

func doRequest(method, path string, payload any) []byte {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	return body
}
