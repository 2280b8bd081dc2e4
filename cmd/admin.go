package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"plasmodocking/internal/accounts"
	"plasmodocking/internal/config"
	"plasmodocking/internal/molecules"
	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/logger"
	"plasmodocking/pkg/storage"
)

func adminCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative helpers",
	}
	cmd.AddCommand(createUserCommand(cfg), listUsersCommand(cfg), listTypesCommand(cfg))

	return cmd
}

func createUserCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Creates a user, optionally with staff access",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			username, _ := cmd.Flags().GetString("username")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			firstName, _ := cmd.Flags().GetString("first-name")
			lastName, _ := cmd.Flags().GetString("last-name")
			staff, _ := cmd.Flags().GetBool("staff")
			superuser, _ := cmd.Flags().GetBool("superuser")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			role := domain.RoleUser
			if superuser {
				role = domain.RoleAdmin
			}
			user, err := newAccounts(ctx, cfg, strg).Register(ctx, accounts.RegisterInput{
				Username:  username,
				Email:     email,
				FirstName: firstName,
				LastName:  lastName,
				Password:  password,
				Role:      role,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create user", zap.Error(err))
			}

			if staff || superuser {
				isStaff := staff || superuser
				user, err = strg.UpdateUser(ctx, user.ID, storage.UserUpdates{IsStaff: &isStaff, IsSuperuser: &superuser})
				if err != nil {
					logger.Fatal(ctx, "could not grant staff access", zap.Error(err))
				}
			}

			if err := writeRows(os.Stdout, userHeaders, [][]string{userRow(user)}); err != nil {
				logger.Fatal(ctx, "could not print user", zap.Error(err))
			}
		},
	}

	cmd.Flags().String("username", "", "Username")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("password", "", "Password; empty creates an account without a usable password")
	cmd.Flags().String("first-name", "", "First name")
	cmd.Flags().String("last-name", "", "Last name")
	cmd.Flags().Bool("staff", false, "Grant staff access")
	cmd.Flags().Bool("superuser", false, "Grant superuser access and the ADMIN role")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

var userHeaders = []string{"id", "username", "email", "role", "staff", "active", "date_joined"} //nolint: gochecknoglobals

func userRow(u *domain.User) []string {
	return []string{
		u.ID.String(),
		u.Username,
		u.Email,
		string(u.Role),
		strconv.FormatBool(u.HasStaffAccess()),
		strconv.FormatBool(u.CanLogin()),
		u.DateJoined.Format(time.RFC3339),
	}
}

func listUsersCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-users",
		Short: "Lists users",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			search, _ := cmd.Flags().GetString("search")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			users, err := strg.ListUsers(ctx, storage.UserFilter{
				Search:  search,
				OrderBy: []storage.Order{{Field: "username"}},
			})
			if err != nil {
				logger.Fatal(ctx, "could not list users", zap.Error(err))
			}

			rows := make([][]string, 0, len(users))
			for i := range users {
				rows = append(rows, userRow(&users[i]))
			}
			if err := writeRows(os.Stdout, userHeaders, rows); err != nil {
				logger.Fatal(ctx, "could not print users", zap.Error(err))
			}
		},
	}
	cmd.Flags().String("search", "", "Filter by username, email or name")

	return cmd
}

func listTypesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-types",
		Short: "Lists macromolecule types with their receptor counts",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			svc := molecules.New(strg, molecules.NewOptions(cfg))
			types, err := svc.ListTypes(ctx, storage.MacromoleculeTypeFilter{})
			if err != nil {
				logger.Fatal(ctx, "could not list types", zap.Error(err))
			}

			rows := make([][]string, 0, len(types))
			for _, t := range types {
				typeID := t.ID
				ms, err := svc.List(ctx, storage.MacromoleculeFilter{TypeID: &typeID})
				if err != nil {
					logger.Fatal(ctx, "could not list macromolecules", zap.Error(err))
				}
				rows = append(rows, []string{
					t.ID.String(), t.Name, strconv.FormatBool(t.Active), strconv.Itoa(len(ms)),
				})
			}
			if err := writeRows(os.Stdout, []string{"id", "name", "active", "macromolecules"}, rows); err != nil {
				logger.Fatal(ctx, "could not print types", zap.Error(err))
			}
		},
	}

	return cmd
}
