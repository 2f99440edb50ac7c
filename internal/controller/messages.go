package controller

// Fallback lines shown when the backend's error body carries no message of
// its own.
const (
	msgFetchBooksFailed   = "Failed to fetch books. Please try again later."
	msgLoadBookFailed     = "Failed to load book details"
	msgDeleteBookFailed   = "Failed to delete book"
	msgCreateBookFailed   = "Failed to create book. Please try again."
	msgUpdateBookFailed   = "Failed to save changes. Please try again."
	msgLoginFailed        = "Login failed. Please try again."
	msgRegisterFailed     = "Registration failed. Please try again."
	msgRequiredBookFields = "Title and author are required."
	msgRequiredLoginField = "Email and password are required."
	msgRequiredRegFields  = "Name, email and password are required."
	msgRegisteredNotice   = "Account created successfully! Please sign in."
)
