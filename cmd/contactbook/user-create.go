package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"contactbook/pkg/db"
	"contactbook/pkg/identity"
	gormstore "contactbook/pkg/server/store/gorm"
)

// userCreateCmd represents the user create command
var userCreateCmd = &cobra.Command{
	Use:   "create <username> <password>",
	Short: "Create a user account",
	Long: `Create a user account.

The password must satisfy the same policy the registration form
enforces. With --admin the account is also added to the Admin role.

Example:
  contactbook user create alice 'S3cret!pass'
  contactbook user create operator 'S3cret!pass' --admin`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		username, password := args[0], args[1]
		admin, _ := cmd.Flags().GetBool("admin")

		if err := createUser(username, password, admin); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create user %s: %v\n", username, err)
			os.Exit(1)
		}
		fmt.Printf("Created user %s\n", username)
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)
	userCreateCmd.Flags().Bool("admin", false, "also grant the Admin role")
}

func createUser(username, password string, admin bool) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}
	users := gormstore.NewUserStore(database)

	_, violations, err := users.CreateUser(username, password)
	if err != nil {
		return err
	}
	if len(violations) > 0 {
		for _, v := range violations {
			fmt.Fprintln(os.Stderr, v)
		}
		return fmt.Errorf("account not created")
	}

	if admin {
		exists, err := users.RoleExists(identity.AdminRole)
		if err != nil {
			return err
		}
		if !exists {
			if err := users.CreateRole(identity.AdminRole); err != nil {
				return err
			}
		}
		if err := users.AddUserToRole(username, identity.AdminRole); err != nil {
			return err
		}
	}
	return nil
}
