package cli

const (
	headerLogin    = "Sign in"
	headerRegister = "Create an account"
	headerNewBook  = "New book"
	headerEditBook = "Edit: %s"

	msgLoggedIn        = "Logged in."
	msgLoggedOut       = "Logged out."
	msgNotLoggedIn     = "Not logged in."
	msgBookCreated     = "Book created."
	msgBookUpdated     = "Changes saved."
	msgBookDeleted     = "Book deleted."
	msgDeleteCancelled = "Delete cancelled."
	msgNoBooks         = "No books yet."
	msgNoCover         = "(no cover)"

	promptTryAgain      = "Try again?"
	promptConfirmDelete = "Delete this book? This cannot be undone."
)
