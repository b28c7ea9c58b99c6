package auth

import (
	"net/http"
	"regexp"
	"time"

	"kalakriti/config"
	"kalakriti/database"
	"kalakriti/internal/api/respond"
	"kalakriti/internal/domain/artforms"
	"kalakriti/internal/domain/artists"
	"kalakriti/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func isPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLetter := false
	hasDigit := false
	for _, c := range password {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
			hasLetter = true
		case '0' <= c && c <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

func isEmailValid(email string) bool {
	pattern := `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType"`

	Bio          string `json:"bio"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	ProfileImage string `json:"profileImage"`

	// Artist-only fields, required when userType is "artist".
	ArtistName      string   `json:"artistName"`
	Specializations []string `json:"specializations"`
	Experience      int      `json:"experience"`
}

func (r *RegisterRequest) validate() []string {
	var errs []string
	if len(r.Name) < 2 || len(r.Name) > 50 {
		errs = append(errs, "Name must be 2-50 characters")
	}
	if !isEmailValid(r.Email) {
		errs = append(errs, "Invalid email format")
	}
	if !isPasswordStrong(r.Password) {
		errs = append(errs, "Password must be at least 8 characters long and contain both letters and numbers")
	}
	if r.UserType != "" && r.UserType != users.TypeCustomer && r.UserType != users.TypeArtist {
		errs = append(errs, "User type must be customer or artist")
	}
	if len(r.Bio) > 500 {
		errs = append(errs, "Bio cannot exceed 500 characters")
	}
	if r.UserType == users.TypeArtist {
		if len(r.ArtistName) < 2 || len(r.ArtistName) > 100 {
			errs = append(errs, "Artist name must be 2-100 characters")
		}
		if r.Experience < 0 || r.Experience > 100 {
			errs = append(errs, "Experience must be between 0-100 years")
		}
		for _, s := range r.Specializations {
			if !artforms.Valid(s) {
				errs = append(errs, "Invalid specialization: "+s)
			}
		}
	}
	return errs
}

func Register(c *gin.Context) {
	var input RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.ValidationFailed(c, []string{err.Error()})
		return
	}
	if input.UserType == "" {
		input.UserType = users.TypeCustomer
	}
	if errs := input.validate(); len(errs) > 0 {
		respond.ValidationFailed(c, errs)
		return
	}

	var existing users.User
	if err := database.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		respond.Error(c, http.StatusConflict, "Email already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		respond.ServerError(c, "Failed to hash password")
		return
	}
	hashed := string(hashedPassword)

	user := users.User{
		Name:         input.Name,
		Email:        input.Email,
		Password:     &hashed,
		AuthProvider: "local",
		UserType:     input.UserType,
		Bio:          input.Bio,
		City:         input.City,
		State:        input.State,
		Country:      input.Country,
		ProfileImage: input.ProfileImage,
	}

	var artist *artists.Artist
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if user.UserType == users.TypeArtist {
			artist = &artists.Artist{
				UserID:          user.ID,
				ArtistName:      input.ArtistName,
				Specializations: input.Specializations,
				Experience:      input.Experience,
				IsActive:        true,
			}
			if err := tx.Create(artist).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		respond.ServerError(c, "Failed to register user")
		return
	}

	tokenString, err := issueAppJWT(user)
	if err != nil {
		respond.ServerError(c, "Could not create token")
		return
	}

	data := gin.H{"token": tokenString, "user": user}
	if artist != nil {
		data["artist"] = artist
	}
	respond.Created(c, "Registered successfully", data)
}

func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.ValidationFailed(c, []string{err.Error()})
		return
	}

	var user users.User
	err := database.DB.Where("email = ?", input.Email).First(&user).Error
	if err != nil {
		respond.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if user.Password == nil || *user.Password == "" {
		respond.Error(c, http.StatusUnauthorized, "This account uses Google sign-in")
		return
	}
	err = bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(input.Password))
	if err != nil {
		respond.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	tokenString, err := issueAppJWT(user)
	if err != nil {
		respond.ServerError(c, "Could not create token")
		return
	}

	respond.OK(c, gin.H{"token": tokenString, "user": user})
}

func issueAppJWT(user users.User) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   user.ID,
		"email":     user.Email,
		"user_type": user.UserType,
		"exp":       time.Now().Add(7 * 24 * time.Hour).Unix(),
	})
	return t.SignedString([]byte(config.JWT_SECRET))
}
