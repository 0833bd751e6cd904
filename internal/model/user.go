package model

import "encoding/json"

// RoleAdmin is the only role value the site recognises.
const RoleAdmin = "admin"

type User struct {
	Base        `bson:",inline"`
	Email       string `bson:"email" json:"email"`
	DisplayName string `bson:"displayName,omitempty" json:"displayName,omitempty"`
	Role        string `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin is false for a nil user, which is how "no such email" is answered.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName" validate:"max=120"`
}

func (r *CreateUserRequest) Validate() error {
	return validate(r)
}

func (r *CreateUserRequest) Document() *User {
	return &User{Email: r.Email, DisplayName: r.DisplayName}
}

// UpsertUserRequest is the body of PUT /users. Every document with the same
// email receives the body's fields; one is created when none exists.
type UpsertUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName" validate:"max=120"`
	Role        string `json:"role"`

	// Extra holds the remaining top-level body fields, set as sent.
	Extra map[string]interface{} `json:"-"`
}

// upsertUserKnown are the body keys that never land in Extra. _id is
// immutable in MongoDB and cannot be part of a $set.
var upsertUserKnown = []string{"_id", "email", "displayName", "role"}

func (r *UpsertUserRequest) UnmarshalJSON(data []byte) error {
	type plain UpsertUserRequest
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}

	extra, err := extraFields(data, upsertUserKnown...)
	if err != nil {
		return err
	}
	r.Extra = extra
	return nil
}

func (r *UpsertUserRequest) Validate() error {
	return validate(r)
}

// Fields is the $set document: everything the body carried.
func (r *UpsertUserRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{}, len(r.Extra)+3)
	for key, value := range r.Extra {
		fields[key] = value
	}

	fields["email"] = r.Email
	if r.DisplayName != "" {
		fields["displayName"] = r.DisplayName
	}
	if r.Role != "" {
		fields["role"] = r.Role
	}
	return fields
}

type MakeAdminRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r *MakeAdminRequest) Validate() error {
	return validate(r)
}

type GetUserRoleRequest struct {
	Email string `param:"email" json:"-" validate:"required"`
}

func (r *GetUserRoleRequest) Validate() error {
	return validate(r)
}

// UserRole answers GET /users/:email.
type UserRole struct {
	Admin bool `json:"admin"`
}
