package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type hotelRequest struct {
	Name      string `json:"name"      validate:"required,max=120"`
	Address   string `json:"address"   validate:"required"`
	ManagerID *int64 `json:"managerId" validate:"omitempty,gt=0"`
}

type createUserRequest struct {
	Username string   `json:"username" validate:"required"`
	Password string   `json:"password" validate:"required,min=6"`
	Roles    []string `json:"roles"    validate:"required,min=1"`
}

// Response shapes come straight from the ports package: ports.HotelSummary
// on the read path (no manager id), ports.HotelDetail after mutations, and
// ports.UserView for everything identity-shaped. The transport layer owns
// no extra projections here.
