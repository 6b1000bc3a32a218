package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler     projectHandler
	certificateHandler certificateHandler
	settingsHandler    settingsHandler
	orderHandler       orderHandler
	uploadHandler      uploadHandler
	authHandler        authHandler
	contactHandler     contactHandler
}

// actionResponse is the uniform mutation result: {"success": bool} plus a
// human-readable error string on failure. Uploads add the stored URL, login
// adds the session token.
type actionResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Field   string `json:"field,omitempty"`
	ID      string `json:"id,omitempty"`
	URL     string `json:"url,omitempty"`
	Token   string `json:"token,omitempty"`
}
