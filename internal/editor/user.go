package editor

import (
	"fmt"
	"strings"

	"github.com/adilbekov/catalog-admin/internal/model"
	"github.com/adilbekov/catalog-admin/internal/store"
	"github.com/adilbekov/catalog-admin/internal/utils"
)

// UserDraft buffers one account's editable fields as strings. Password
// and ConfirmPassword are only meaningful while creating; on an edit a
// non-empty password replaces the stored credential.
type UserDraft struct {
	Name            string
	Email           string
	Role            string
	Status          string
	Password        string
	ConfirmPassword string
}

// Set overwrites a single draft field.
func (d *UserDraft) Set(name, value string) error {
	switch name {
	case "name":
		d.Name = value
	case "email":
		d.Email = value
	case "role":
		d.Role = value
	case "status":
		d.Status = value
	case "password":
		d.Password = value
	case "confirm_password":
		d.ConfirmPassword = value
	default:
		return fmt.Errorf("unknown user field %q", name)
	}
	return nil
}

func blankUserDraft() UserDraft {
	return UserDraft{Role: model.RoleUser, Status: model.UserStatusActive}
}

func draftFromUser(u model.User) UserDraft {
	return UserDraft{
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Status: u.Status,
	}
}

// UserEditor drives the create/edit/delete workflow for the users page.
// Unlike products, status is taken verbatim from the draft. New accounts
// must confirm their password; the hash is computed at commit time.
type UserEditor struct {
	users      *store.UserStore
	bcryptCost int
	state      State
	targetID   uint64
	draft      UserDraft
}

func NewUserEditor(users *store.UserStore, bcryptCost int) *UserEditor {
	return &UserEditor{users: users, bcryptCost: bcryptCost}
}

// State returns the current session state.
func (e *UserEditor) State() State { return e.state }

// Target returns the id an edit or pending delete session points at.
func (e *UserEditor) Target() uint64 { return e.targetID }

// Draft returns a copy of the current draft.
func (e *UserEditor) Draft() UserDraft { return e.draft }

// AddNew opens a creation session with a blank draft (role User, status
// Active).
func (e *UserEditor) AddNew() error {
	if e.state != StateClosed {
		return ErrSessionOpen
	}
	e.draft = blankUserDraft()
	e.targetID = 0
	e.state = StateCreating
	return nil
}

// Edit opens an editing session prefilled from the account's current
// values. Password fields start blank: leaving them blank keeps the
// stored credential.
func (e *UserEditor) Edit(id uint64) error {
	if e.state != StateClosed {
		return ErrSessionOpen
	}
	u, ok := e.users.Get(id)
	if !ok {
		return ErrNotFound
	}
	e.draft = draftFromUser(u)
	e.targetID = id
	e.state = StateEditing
	return nil
}

// SetField overwrites one draft field of the open session.
func (e *UserEditor) SetField(name, value string) error {
	if e.state != StateCreating && e.state != StateEditing {
		return ErrNoSession
	}
	return e.draft.Set(name, value)
}

// Cancel discards the draft and closes the session.
func (e *UserEditor) Cancel() {
	e.draft = UserDraft{}
	e.targetID = 0
	e.state = StateClosed
}

// Submit validates the draft and commits it. Creating requires a password
// and a matching confirmation; a mismatch aborts with the session left
// open and the collection unchanged. Editing preserves last login and,
// when the password field is blank, the stored hash.
func (e *UserEditor) Submit() (model.User, error) {
	if e.state != StateCreating && e.state != StateEditing {
		return model.User{}, ErrNoSession
	}

	name := strings.TrimSpace(e.draft.Name)
	if name == "" {
		return model.User{}, invalidf("full name is required")
	}
	email := strings.TrimSpace(e.draft.Email)
	if email == "" {
		return model.User{}, invalidf("email is required")
	}

	// The dialog offers fixed choices; anything else never commits.
	switch e.draft.Role {
	case model.RoleAdmin, model.RoleManager, model.RoleUser:
	default:
		return model.User{}, invalidf("invalid role")
	}
	switch e.draft.Status {
	case model.UserStatusActive, model.UserStatusInactive, model.UserStatusPending:
	default:
		return model.User{}, invalidf("invalid status")
	}

	u := model.User{
		Name:   name,
		Email:  email,
		Role:   e.draft.Role,
		Status: e.draft.Status,
	}

	if e.state == StateCreating {
		if e.draft.Password == "" {
			return model.User{}, invalidf("password is required")
		}
		if e.draft.Password != e.draft.ConfirmPassword {
			return model.User{}, invalidf("passwords do not match")
		}
		hash, err := utils.HashPassword(e.draft.Password, e.bcryptCost)
		if err != nil {
			return model.User{}, fmt.Errorf("hash password: %w", err)
		}
		u.ID = e.users.NextID()
		u.LastLogin = "Never"
		u.PasswordHash = hash
		e.users.Create(u)
		e.Cancel()
		return u, nil
	}

	// Editing: carry over the fields the dialog does not expose.
	if existing, ok := e.users.Get(e.targetID); ok {
		u.LastLogin = existing.LastLogin
		u.PasswordHash = existing.PasswordHash
	}
	if e.draft.Password != "" {
		hash, err := utils.HashPassword(e.draft.Password, e.bcryptCost)
		if err != nil {
			return model.User{}, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = hash
	}
	u.ID = e.targetID
	e.users.Update(e.targetID, u)
	e.Cancel()
	return u, nil
}

// RequestDelete opens a pending-delete session and returns the record so
// the caller can build a confirmation prompt.
func (e *UserEditor) RequestDelete(id uint64) (model.User, error) {
	if e.state != StateClosed {
		return model.User{}, ErrSessionOpen
	}
	u, ok := e.users.Get(id)
	if !ok {
		return model.User{}, ErrNotFound
	}
	e.targetID = id
	e.state = StatePendingDelete
	return u, nil
}

// ConfirmDelete removes the pending record and closes the session.
func (e *UserEditor) ConfirmDelete() (uint64, error) {
	if e.state != StatePendingDelete {
		return 0, ErrNoSession
	}
	id := e.targetID
	e.users.Delete(id)
	e.Cancel()
	return id, nil
}

// CancelDelete declines the confirmation and leaves the collection
// untouched.
func (e *UserEditor) CancelDelete() error {
	if e.state != StatePendingDelete {
		return ErrNoSession
	}
	e.Cancel()
	return nil
}
