package handlers

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"brew-and-bite-api/config"
	"brew-and-bite-api/middleware"
	"brew-and-bite-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// pendingSignup holds a signup awaiting email verification. The account row
// is only created once the OTP comes back.
type pendingSignup struct {
	Name         string
	PasswordHash string
	OTP          string
	ExpiresAt    time.Time
}

const otpTTL = 10 * time.Minute

var (
	pendingMu      sync.Mutex
	pendingSignups = map[string]pendingSignup{}
)

// Signup starts registration: hash the password, park the signup, email a
// six-digit verification code. Unlike order/booking mail, the OTP mail must
// arrive, so a send failure fails the request.
func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	otp := fmt.Sprintf("%06d", rand.Intn(900000)+100000)

	body := fmt.Sprintf("Hello %s,\n\nYour verification code is: %s\n\n- The Brew & Bite Team", req.Name, otp)
	if err := Mail.TrySend(req.Email, "Your Brew & Bite Verification Code", body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not send verification email. Please try again."})
		return
	}

	pendingMu.Lock()
	pendingSignups[req.Email] = pendingSignup{
		Name:         req.Name,
		PasswordHash: string(hash),
		OTP:          otp,
		ExpiresAt:    time.Now().Add(otpTTL),
	}
	pendingMu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "A verification code has been sent to your email"})
}

// VerifyOTP completes registration. The configured admin email gets the admin
// flag on its account.
func VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pendingMu.Lock()
	pending, ok := pendingSignups[req.Email]
	pendingMu.Unlock()

	if !ok || time.Now().After(pending.ExpiresAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No pending signup for this email. Please sign up again."})
		return
	}
	if req.OTP != pending.OTP {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP. Please try again."})
		return
	}

	user := models.User{
		Name:         pending.Name,
		Email:        req.Email,
		PasswordHash: pending.PasswordHash,
		IsAdmin:      req.Email == config.AdminEmail(),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	pendingMu.Lock()
	delete(pendingSignups, req.Email)
	pendingMu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"message": "Email verified successfully! Please log in."})
}

// Login authenticates a user, returns a JWT, and fires off a login
// notification email.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	loginTime := time.Now().Format("02 Jan 2006 at 03:04 PM")
	body := fmt.Sprintf("Hello %s,\n\nYour account was just accessed on %s.\n\n- The Brew & Bite Team", user.Name, loginTime)
	go Mail.Send(user.Email, "New Login to Your Brew & Bite Account", body)

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome back, %s!", user.Name),
		"token":   token,
		"user": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"is_admin": user.IsAdmin,
		},
	})
}

// GetProfile returns the authenticated user's profile
func GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
