package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
	rawJSON bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "splitledger-cli",
		Short: "SplitLedger CLI tool",
		Long:  `A command line interface for interacting with the SplitLedger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the SplitLedger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolVar(&rawJSON, "json", false, "Print raw JSON responses")

	// Ledger commands
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}
	ledgerCmd.AddCommand(balancesCmd(), planCmd())
	rootCmd.AddCommand(ledgerCmd)

	// Obligation commands
	obligationsCmd := &cobra.Command{
		Use:   "obligations",
		Short: "Card obligation operations",
	}
	obligationsCmd.AddCommand(listObligationsCmd(), reconcileCmd())
	rootCmd.AddCommand(obligationsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func balancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balances <ledger-id>",
		Short: "Show net balances of a ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := get(fmt.Sprintf("/api/v1/ledgers/%s/balances", args[0]))
			if err != nil {
				return err
			}

			if rawJSON {
				return printRawJSON(body)
			}

			var result struct {
				LedgerID string `json:"ledger_id"`
				Balances []struct {
					MemberID    string `json:"member_id"`
					DisplayName string `json:"display_name"`
					Balance     string `json:"balance"`
				} `json:"balances"`
			}
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			fmt.Printf("Ledger %s\n", result.LedgerID)
			for _, b := range result.Balances {
				fmt.Printf("  %-20s %12s\n", truncate(b.DisplayName, 20), b.Balance)
			}
			return nil
		},
	}
}

func planCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <ledger-id>",
		Short: "Show the minimal settlement plan of a ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := get(fmt.Sprintf("/api/v1/ledgers/%s/settlement-plan", args[0]))
			if err != nil {
				return err
			}

			if rawJSON {
				return printRawJSON(body)
			}

			var result struct {
				LedgerID  string `json:"ledger_id"`
				Transfers []struct {
					FromMemberID string `json:"from_member_id"`
					ToMemberID   string `json:"to_member_id"`
					Amount       string `json:"amount"`
				} `json:"transfers"`
			}
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			if len(result.Transfers) == 0 {
				fmt.Println("Everyone is settled up.")
				return nil
			}
			for _, tr := range result.Transfers {
				fmt.Printf("  %s pays %s to %s\n", tr.FromMemberID, tr.Amount, tr.ToMemberID)
			}
			return nil
		},
	}
}

func listObligationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <user-id>",
		Short: "List a user's card obligations by due month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := get(fmt.Sprintf("/api/v1/users/%s/obligations", args[0]))
			if err != nil {
				return err
			}

			if rawJSON {
				return printRawJSON(body)
			}

			var result struct {
				Obligations []struct {
					Description string    `json:"description"`
					Amount      string    `json:"amount"`
					DueMonth    time.Time `json:"due_month"`
					Card        struct {
						BankName string `json:"bank_name"`
						CardType string `json:"card_type"`
					} `json:"card"`
				} `json:"obligations"`
				Total int64 `json:"total"`
			}
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			for _, o := range result.Obligations {
				fmt.Printf("  %s  %-30s %12s  (%s %s)\n",
					o.DueMonth.Format("2006-01"),
					truncate(o.Description, 30),
					o.Amount,
					o.Card.BankName,
					o.Card.CardType,
				)
			}
			fmt.Printf("Total: %d\n", result.Total)
			return nil
		},
	}
}

func reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile <user-id>",
		Short: "Rebuild a user's obligation projection from source ledgers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := post(fmt.Sprintf("/api/v1/users/%s/obligations/reconcile", args[0]))
			if err != nil {
				return err
			}

			if rawJSON {
				return printRawJSON(body)
			}

			var result struct {
				Created int `json:"created"`
				Updated int `json:"updated"`
				Deleted int `json:"deleted"`
			}
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			fmt.Printf("Reconciled: %d created, %d updated, %d deleted\n", result.Created, result.Updated, result.Deleted)
			return nil
		},
	}
}

func get(path string) ([]byte, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return readResponse(resp)
}

func post(path string) ([]byte, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return readResponse(resp)
}

func readResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}

func printRawJSON(body []byte) error {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	printJSON(v)
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render JSON: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
