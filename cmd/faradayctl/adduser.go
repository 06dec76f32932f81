package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var addUserRole string

var addUserCmd = &cobra.Command{
	Use:   "adduser <username> <password>",
	Short: "Create or update a user with a bcrypt-hashed password",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, password := args[0], args[1]
		if addUserRole != "student" && addUserRole != "teacher" && addUserRole != "admin" {
			return errors.New("role must be student, teacher or admin")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
		if err != nil {
			return err
		}

		dbh, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer dbh.Close()

		res, err := dbh.ExecContext(cmd.Context(),
			`UPDATE users SET password_hash=$1, role=$2 WHERE username=$3`,
			string(hash), addUserRole, username)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			_, err = dbh.ExecContext(cmd.Context(),
				`INSERT INTO users (id, username, password_hash, role, created_at) VALUES ($1,$2,$3,$4,$5)`,
				uuid.NewString(), username, string(hash), addUserRole, time.Now().Unix())
			if err != nil {
				return err
			}
			fmt.Printf("created %s (%s)\n", username, addUserRole)
			return nil
		}
		fmt.Printf("updated %s (%s)\n", username, addUserRole)
		return nil
	},
}

func init() {
	addUserCmd.Flags().StringVar(&addUserRole, "role", "student", "user role (student|teacher|admin)")
	rootCmd.AddCommand(addUserCmd)
}
