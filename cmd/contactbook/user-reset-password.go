package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"contactbook/pkg/db"
	"contactbook/pkg/identity"
)

// userResetPasswordCmd represents the user reset-password command
var userResetPasswordCmd = &cobra.Command{
	Use:   "reset-password <username>",
	Short: "Reset a user's password",
	Long: `Reset the password for a user account.

The new password is read from standard input so it never appears in the
process list or shell history.

Example:
  echo 'N3w-secret!' | contactbook user reset-password Admin`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		username := args[0]

		if err := resetPassword(username); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to reset password for %s: %v\n", username, err)
			os.Exit(1)
		}
		fmt.Printf("Password updated for %s\n", username)
	},
}

func init() {
	userCmd.AddCommand(userResetPasswordCmd)
}

func resetPassword(username string) error {
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil && password == "" {
		return fmt.Errorf("failed to read password from stdin: %w", err)
	}
	password = strings.TrimRight(password, "\r\n")

	if violations := identity.ValidatePassword(password); len(violations) > 0 {
		for _, v := range violations {
			fmt.Fprintln(os.Stderr, v)
		}
		return fmt.Errorf("password rejected by policy")
	}

	hash, err := identity.HashPassword(password)
	if err != nil {
		return err
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	result := database.Exec(
		`UPDATE users SET password_hash = ? WHERE normalized_username = ?`,
		hash, identity.Normalize(username),
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("no such user")
	}
	return nil
}
