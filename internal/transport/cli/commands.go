package cli

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"bookshelf_cli/utils"
)

// RootCommand builds the command tree. Every catalog command is a navigation:
// it goes through the route guard, so running a protected command while
// logged out lands on the login view.
func (a *App) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "bookshelf",
		Short:         "Terminal client for the book catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Open("/")
		},
	}

	var page, pageSize int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List books",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "/books"
			query := url.Values{}
			if page > 1 {
				query.Set("page", strconv.Itoa(page))
			}
			if pageSize > 0 {
				query.Set("page_size", strconv.Itoa(pageSize))
			}
			if len(query) > 0 {
				target += "?" + query.Encode()
			}
			return a.Open(target)
		},
	}
	listCmd.Flags().IntVar(&page, "page", 1, "page number")
	listCmd.Flags().IntVar(&pageSize, "page-size", 0, "books per page")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Open("/books/" + args[0])
		},
	}

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Add a book",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Open("/books/new")
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Open("/books/" + args[0] + "/edit")
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a book (asks for confirmation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := utils.CreateCtxWithRqID(context.Background())
			return a.runDelete(ctx, args[0])
		},
	}

	openCmd := &cobra.Command{
		Use:   "open <path>",
		Short: "Navigate to a path, e.g. /books/5",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Open(args[0])
		},
	}

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Open("/login")
		},
	}

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Open("/register")
		},
	}

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := utils.CreateCtxWithRqID(context.Background())
			if err := a.auth.Logout(ctx); err != nil {
				return err
			}
			fmt.Fprintln(a.out, msgLoggedOut)
			return nil
		},
	}

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := utils.CreateCtxWithRqID(context.Background())
			user, ok := a.auth.CurrentUser(ctx)
			if !ok {
				fmt.Fprintln(a.out, msgNotLoggedIn)
				return nil
			}
			fmt.Fprintf(a.out, "%s <%s>\n", user.Name, user.Email)
			return nil
		},
	}

	root.AddCommand(listCmd, showCmd, newCmd, editCmd, deleteCmd, openCmd, loginCmd, registerCmd, logoutCmd, whoamiCmd)

	return root
}
