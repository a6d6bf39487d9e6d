package dto

// CreateUserRequest registers a staff account.
type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required,max=128"`
	LastName  string `json:"last_name" validate:"required,max=128"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"required,oneof=admin groupadmin fieldstaff teamleader volunteer"`
	Phone     string `json:"phone" validate:"max=64"`
}

// UpdateUserRequest updates a staff account. Password is optional; when set
// it replaces the stored hash.
type UpdateUserRequest struct {
	FirstName string `json:"first_name" validate:"required,max=128"`
	LastName  string `json:"last_name" validate:"required,max=128"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"omitempty,min=8"`
	Role      string `json:"role" validate:"required,oneof=admin groupadmin fieldstaff teamleader volunteer"`
	Phone     string `json:"phone" validate:"max=64"`
}

// CreateVolunteerRequest adds a volunteer to the catalog.
type CreateVolunteerRequest struct {
	FirstName             string `json:"first_name" validate:"required,max=128"`
	LastName              string `json:"last_name" validate:"required,max=128"`
	Email                 string `json:"email" validate:"required,email,max=255"`
	Phone                 string `json:"phone" validate:"max=64"`
	EmergencyContact      string `json:"emergency_contact" validate:"max=255"`
	EmergencyContactPhone string `json:"emergency_contact_phone" validate:"max=64"`
}

// UpdateVolunteerRequest updates a volunteer's details.
type UpdateVolunteerRequest = CreateVolunteerRequest
