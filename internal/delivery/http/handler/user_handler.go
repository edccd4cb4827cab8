package handler

import (
	"encoding/json"
	"net/http"

	"bhrms/internal/delivery/dto"
	"bhrms/internal/usecase"
	"bhrms/pkg/response"
	"bhrms/pkg/validator"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

// CreateUser handles admin user creation
// @Summary Create a user account
// @Description Create a credentialed account with a role
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Create User Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.CreateUser(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrCredentialExists:
			response.Conflict(w, "User with this credential already exists")
		case usecase.ErrInvalidRole:
			response.Error(w, http.StatusBadRequest, "Invalid role", nil)
		default:
			response.InternalServerError(w, "Failed to create user")
		}
		return
	}

	response.Success(w, http.StatusCreated, "User created successfully", user)
}

// GetAllUsers handles listing all user accounts
// @Summary List users
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/users [get]
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.GetAllUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

// DeleteUser handles user deletion
// @Summary Delete a user by credential
// @Description Removes the account; referrals previously attributed to it are kept
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{credential} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	credential := vars["credential"]
	if credential == "" {
		response.Error(w, http.StatusBadRequest, "Credential is required", nil)
		return
	}

	if err := h.userUsecase.DeleteUser(r.Context(), credential); err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to delete user")
		}
		return
	}

	response.Success(w, http.StatusOK, "User deleted successfully", nil)
}

// AddUserLegacy preserves the original /api/admin/add-user contract: flat
// {error} bodies, {success, message, user} on success, role checked by
// hand before validation-tag style checks ever existed.
func (h *UserHandler) AddUserLegacy(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// The original fed an unparseable body into its catch-all, not the
		// missing-fields branch
		response.JSON(w, http.StatusInternalServerError, dto.LegacyErrorResponse{
			Error:   "Failed to create user",
			Details: err.Error(),
		})
		return
	}

	if req.Credential == "" || req.FirstName == "" || req.LastName == "" || req.Role == "" {
		response.JSON(w, http.StatusBadRequest, dto.LegacyErrorResponse{Error: "Missing required fields"})
		return
	}

	user, err := h.userUsecase.CreateUser(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidRole:
			response.JSON(w, http.StatusBadRequest, dto.LegacyErrorResponse{Error: "Invalid role"})
		case usecase.ErrCredentialExists:
			response.JSON(w, http.StatusConflict, dto.LegacyErrorResponse{Error: "User with this credential already exists"})
		default:
			response.JSON(w, http.StatusInternalServerError, dto.LegacyErrorResponse{
				Error:   "Failed to create user",
				Details: err.Error(),
			})
		}
		return
	}

	response.JSON(w, http.StatusOK, dto.LegacyAddUserResponse{
		Success: true,
		Message: "User " + user.FirstName + " " + user.LastName + " created successfully",
		User: &dto.LegacyUserBody{
			Credential: user.Credential,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			Role:       user.Role,
		},
	})
}
