package usercontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/jxsus-1/api-supermarket/auth"
	"github.com/jxsus-1/api-supermarket/httperr"
	"github.com/jxsus-1/api-supermarket/models"
	"github.com/jxsus-1/api-supermarket/storage"
)

// RegisterUser handles POST /users. The Firebase account is created first and
// the local profile second; if the local insert fails the Firebase account is
// deleted again so no orphaned credential survives. That compensating delete
// is best effort and not atomic with the insert failure.
func RegisterUser(users storage.UserStore, accounts auth.AccountProvider, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		uid, err := accounts.CreateAccount(ctx, user.Email, user.Password)
		if err != nil {
			log.Warn("firebase account creation rejected", zap.String("email", user.Email), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error al registrar usuario en firebase"})
			return
		}

		user.ID = primitive.NilObjectID
		user.Active = true
		user.Admin = false

		if err := users.InsertUser(ctx, &user); err != nil {
			if delErr := accounts.DeleteAccount(ctx, uid); delErr != nil {
				log.Error("compensating firebase delete failed",
					zap.String("uid", uid),
					zap.Error(delErr),
				)
			}
			httperr.Respond(c, log, err)
			return
		}

		user.Password = models.MaskedPassword
		c.JSON(http.StatusOK, user)
	}
}

// Login handles POST /login: the password is verified against the identity
// provider before any local lookup, then the local profile is projected into
// a signed session token.
func Login(users storage.UserStore, verifier *auth.Verifier, issuer *auth.Issuer, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var login models.Login
		if err := c.ShouldBindJSON(&login); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		if err := verifier.Verify(ctx, login.Email, login.Password); err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Error al autenticar usuario"})
				return
			}
			httperr.Respond(c, log, httperr.New(httperr.ErrUpstream, "", err))
			return
		}

		user, err := users.FindUserByEmail(ctx, login.Email)
		if errors.Is(err, storage.ErrNotFound) {
			httperr.Respond(c, log, httperr.New(httperr.ErrNotFound, "Usuario no encontrado en la base de datos", err))
			return
		}
		if err != nil {
			httperr.Respond(c, log, err)
			return
		}

		token, err := issuer.Issue(user)
		if err != nil {
			httperr.Respond(c, log, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Usuario autenticado",
			"idToken": token,
		})
	}
}
