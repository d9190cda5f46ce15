package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-owl/internal/client"
	"github.com/MKhiriev/go-pass-owl/internal/service"
	"github.com/MKhiriev/go-pass-owl/models"
)

type runner func(fn func(ctx context.Context, a *client.App, args []string) error) func(*cobra.Command, []string) error

func newRegisterCommand(run runner) *cobra.Command {
	var username string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, a *client.App, _ []string) error {
			password, err := a.Prompt(ctx, "Master password: ")
			if err != nil {
				return err
			}
			confirm, err := a.Prompt(ctx, "Repeat master password: ")
			if err != nil {
				return err
			}
			if password != confirm {
				return fmt.Errorf("%w: passwords do not match", service.ErrInvalidDataProvided)
			}

			user, err := a.Services().AuthService.Register(ctx, username, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.Out(), "registered %s (id %d), log in and run keys init\n", user.Username, user.ID)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account name")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func newLoginCommand(run runner) *cobra.Command {
	var username string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, a *client.App, _ []string) error {
			password, err := a.Prompt(ctx, "Master password: ")
			if err != nil {
				return err
			}
			services := a.Services()
			if err = services.AuthService.Login(ctx, username, password); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(a.Out(), "logged in")

			hasKeys, err := services.KeyService.HasKeys(ctx)
			if err == nil && !hasKeys {
				_, _ = fmt.Fprintln(a.Out(), "no sharing keys yet, run keys init")
			}
			return nil
		}),
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account name")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func newLogoutCommand(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, a *client.App, _ []string) error {
			if err := a.Services().AuthService.Logout(ctx); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(a.Out(), "logged out")
			return nil
		}),
	}
}

func newKeysCommand(run runner) *cobra.Command {
	cmd := &cobra.Command{Use: "keys", Short: "Manage the sharing key pair"}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Generate and upload the key pair",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, a *client.App, _ []string) error {
			password, err := a.Unlock(ctx)
			if err != nil {
				return err
			}
			publicKey, err := a.Services().KeyService.GenerateAndStoreKeys(ctx, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.Out(), "key pair stored, public key %s...\n", publicKey[:min(len(publicKey), 24)])
			return nil
		}),
	})
	return cmd
}

func newCredentialsCommand(run runner) *cobra.Command {
	cmd := &cobra.Command{Use: "credentials", Aliases: []string{"cred"}, Short: "Manage credentials"}

	var input models.CredentialInput
	var url string
	add := &cobra.Command{
		Use:   "add",
		Short: "Store a credential",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, a *client.App, _ []string) error {
			if _, err := a.Unlock(ctx); err != nil {
				return err
			}
			password, err := a.Prompt(ctx, "Credential password: ")
			if err != nil {
				return err
			}
			input.Password = password
			if url != "" {
				input.URL = &url
			}
			created, err := a.Services().CredentialService.Create(ctx, input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.Out(), "stored credential %d\n", created.ID)
			return nil
		}),
	}
	add.Flags().StringVarP(&input.Title, "title", "t", "", "credential title")
	add.Flags().StringVarP(&input.Username, "username", "u", "", "account user name")
	add.Flags().StringVar(&url, "url", "", "site address")
	add.Flags().Int64SliceVar(&input.CategoryIDs, "category", nil, "category ids")
	_ = add.MarkFlagRequired("title")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a credential with its password",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, a *client.App, args []string) error {
			id, err := client.ParseID(args[0])
			if err != nil {
				return err
			}
			if _, err = a.Unlock(ctx); err != nil {
				return err
			}
			return client.PrintCredential(ctx, a.Services().CredentialService, a.Out(), id)
		}),
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List credentials",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, a *client.App, _ []string) error {
			if err := a.RequireSession(ctx); err != nil {
				return err
			}
			return client.PrintCredentials(ctx, a.Services().CredentialService, a.Out())
		}),
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a credential",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, a *client.App, args []string) error {
			id, err := client.ParseID(args[0])
			if err != nil {
				return err
			}
			if err = a.RequireSession(ctx); err != nil {
				return err
			}
			return a.Services().CredentialService.Delete(ctx, id)
		}),
	}

	cmd.AddCommand(add, get, list, del)
	return cmd
}

func newNotesCommand(run runner) *cobra.Command {
	cmd := &cobra.Command{Use: "notes", Short: "Manage secure notes"}

	var title string
	add := &cobra.Command{
		Use:   "add",
		Short: "Store a note, content is read from input",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, a *client.App, _ []string) error {
			if _, err := a.Unlock(ctx); err != nil {
				return err
			}
			content, err := a.Prompt(ctx, "Content: ")
			if err != nil {
				return err
			}
			created, err := a.Services().NoteService.Create(ctx, models.NoteInput{Title: title, Content: content})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.Out(), "stored note %d\n", created.ID)
			return nil
		}),
	}
	add.Flags().StringVarP(&title, "title", "t", "", "note title")
	_ = add.MarkFlagRequired("title")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a note",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, a *client.App, args []string) error {
			id, err := client.ParseID(args[0])
			if err != nil {
				return err
			}
			if _, err = a.Unlock(ctx); err != nil {
				return err
			}
			return client.PrintNote(ctx, a.Services().NoteService, a.Out(), id)
		}),
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, a *client.App, _ []string) error {
			if _, err := a.Unlock(ctx); err != nil {
				return err
			}
			return client.PrintNotes(ctx, a.Services().NoteService, a.Out())
		}),
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, a *client.App, args []string) error {
			id, err := client.ParseID(args[0])
			if err != nil {
				return err
			}
			if err = a.RequireSession(ctx); err != nil {
				return err
			}
			return a.Services().NoteService.Delete(ctx, id)
		}),
	}

	cmd.AddCommand(add, get, list, del)
	return cmd
}

func newShareCommand(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "share <credential-id> <recipient-id>",
		Short: "Share a credential password with another user",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(ctx context.Context, a *client.App, args []string) error {
			credentialID, err := client.ParseID(args[0])
			if err != nil {
				return err
			}
			recipientID, err := client.ParseID(args[1])
			if err != nil {
				return err
			}
			if _, err = a.Unlock(ctx); err != nil {
				return err
			}
			shared, err := a.Services().SharingService.Share(ctx, credentialID, recipientID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.Out(), "shared as %d\n", shared.ID)
			return nil
		}),
	}
}

func newReshareCommand(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "reshare <credential-id> [recipient-id...]",
		Short: "Re-seal a credential for its recipients after an edit",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(ctx context.Context, a *client.App, args []string) error {
			credentialID, err := client.ParseID(args[0])
			if err != nil {
				return err
			}
			recipients := make([]int64, 0, len(args)-1)
			for _, arg := range args[1:] {
				id, err := client.ParseID(arg)
				if err != nil {
					return err
				}
				recipients = append(recipients, id)
			}
			if _, err = a.Unlock(ctx); err != nil {
				return err
			}
			updated, err := a.Services().SharingService.Reshare(ctx, credentialID, recipients)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.Out(), "re-sealed for %d recipients\n", len(updated))
			return nil
		}),
	}
}

func newSharedCommand(run runner) *cobra.Command {
	cmd := &cobra.Command{Use: "shared", Short: "Inspect shared credentials"}

	list := &cobra.Command{
		Use:   "list",
		Short: "Open the credentials shared with you",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, a *client.App, _ []string) error {
			if _, err := a.Unlock(ctx); err != nil {
				return err
			}
			hasKeys, err := a.Services().KeyService.HasKeys(ctx)
			if err != nil {
				return err
			}
			if !hasKeys {
				return service.ErrNoKeys
			}
			return client.PrintReceived(ctx, a.Services().SharingService, a.Out())
		}),
	}

	owned := &cobra.Command{
		Use:   "owned",
		Short: "List the shares you created",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, a *client.App, _ []string) error {
			if err := a.RequireSession(ctx); err != nil {
				return err
			}
			items, err := a.Services().SharingService.ListOwned(ctx)
			if err != nil {
				return err
			}
			for _, item := range items {
				_, _ = fmt.Fprintf(a.Out(), "%d\tcredential %d\t-> user %d\n", item.ID, item.CredentialID, item.RecipientUserID)
			}
			return nil
		}),
	}

	revoke := &cobra.Command{
		Use:   "revoke <share-id>",
		Short: "Revoke a share",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, a *client.App, args []string) error {
			id, err := client.ParseID(args[0])
			if err != nil {
				return err
			}
			if err = a.RequireSession(ctx); err != nil {
				return err
			}
			return a.Services().SharingService.Unshare(ctx, id)
		}),
	}

	revokeUser := &cobra.Command{
		Use:   "revoke-user <credential-id> <user-id>",
		Short: "Stop sharing a credential with one user",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(ctx context.Context, a *client.App, args []string) error {
			credentialID, err := client.ParseID(args[0])
			if err != nil {
				return err
			}
			userID, err := client.ParseID(args[1])
			if err != nil {
				return err
			}
			if err = a.RequireSession(ctx); err != nil {
				return err
			}
			if err = a.Services().SharingService.RevokeRecipient(ctx, credentialID, userID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.Out(), "credential %d is no longer shared with user %d\n", credentialID, userID)
			return nil
		}),
	}

	cmd.AddCommand(list, owned, revoke, revokeUser)
	return cmd
}

func newCategoriesCommand(run runner) *cobra.Command {
	cmd := &cobra.Command{Use: "categories", Aliases: []string{"cat"}, Short: "Manage credential categories"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, a *client.App, _ []string) error {
			if err := a.RequireSession(ctx); err != nil {
				return err
			}
			return client.PrintCategories(ctx, a.Services().CategoryService, a.Out())
		}),
	}

	var color string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(ctx context.Context, a *client.App, args []string) error {
			if err := a.RequireSession(ctx); err != nil {
				return err
			}
			created, err := a.Services().CategoryService.Create(ctx, strings.Join(args, " "), color)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.Out(), "created category %d\n", created.ID)
			return nil
		}),
	}
	add.Flags().StringVar(&color, "color", "", "color as #RRGGBB")

	var name, newColor string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename or recolor a category",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, a *client.App, args []string) error {
			id, err := client.ParseID(args[0])
			if err != nil {
				return err
			}
			var changes models.CategoryWrite
			if name != "" {
				changes.Name = &name
			}
			if newColor != "" {
				changes.ColorHex = &newColor
			}
			if err = a.RequireSession(ctx); err != nil {
				return err
			}
			_, err = a.Services().CategoryService.Update(ctx, id, changes)
			return err
		}),
	}
	update.Flags().StringVar(&name, "name", "", "new name")
	update.Flags().StringVar(&newColor, "color", "", "new color as #RRGGBB")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, a *client.App, args []string) error {
			id, err := client.ParseID(args[0])
			if err != nil {
				return err
			}
			if err = a.RequireSession(ctx); err != nil {
				return err
			}
			return a.Services().CategoryService.Delete(ctx, id)
		}),
	}

	cmd.AddCommand(list, add, update, del)
	return cmd
}

func newStatsCommand(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show how many records the vault holds",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, a *client.App, _ []string) error {
			if err := a.RequireSession(ctx); err != nil {
				return err
			}
			return client.PrintStats(ctx, a.Services().AuthService, a.Out())
		}),
	}
}

func newUsersCommand(run runner) *cobra.Command {
	cmd := &cobra.Command{Use: "users", Short: "Find users to share with"}
	cmd.AddCommand(&cobra.Command{
		Use:   "search <query>",
		Short: "Search users by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(ctx context.Context, a *client.App, args []string) error {
			if err := a.RequireSession(ctx); err != nil {
				return err
			}
			users, err := a.Services().SharingService.SearchUsers(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			for _, u := range users {
				_, _ = fmt.Fprintf(a.Out(), "%d\t%s\n", u.ID, u.Username)
			}
			return nil
		}),
	})
	return cmd
}

func newSessionCommand(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Unlock the vault and keep an interactive session open",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, a *client.App, _ []string) error {
			return a.Run(ctx)
		}),
	}
}
