package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"bloghub/internal/config"
)

type Middleware func(http.Handler) http.Handler

// Subject is the identity bound to the request after token verification.
type Subject struct {
	UserID string
	Name   string
	Email  string
}

type contextKey int

const subjectKey contextKey = iota

func ContextWithSubject(ctx context.Context, subject Subject) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

func SubjectFromContext(ctx context.Context) (Subject, bool) {
	subject, ok := ctx.Value(subjectKey).(Subject)
	return subject, ok
}

// RequireAuth verifies the JWT token and adds the subject to the context.
// Missing, malformed or expired tokens are always rejected.
func RequireAuth(cfg *config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// the header carries the compact token verbatim, no "Bearer " prefix
			tokenString := r.Header.Get("Authorization")
			if tokenString == "" {
				writeError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			subject, err := verifyToken(cfg, tokenString)
			if err != nil {
				writeError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithSubject(r.Context(), subject)))
		})
	}
}

// OptionalAuth lets anonymous requests through but still rejects a token that
// is present and fails verification. Continuing on a bad token would let a
// forged token reach the handlers unnoticed.
func OptionalAuth(cfg *config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get("Authorization")
			if tokenString == "" {
				next.ServeHTTP(w, r)
				return
			}

			subject, err := verifyToken(cfg, tokenString)
			if err != nil {
				writeError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithSubject(r.Context(), subject)))
		})
	}
}

func verifyToken(cfg *config.Config, tokenString string) (Subject, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// checking the signature algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(cfg.JWTSecretKey), nil
	})

	if err != nil {
		return Subject{}, fmt.Errorf("ошибка парсинга токена: %w", err)
	}

	if !token.Valid {
		return Subject{}, fmt.Errorf("недействительный токен")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Subject{}, fmt.Errorf("неверный формат claims")
	}

	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		return Subject{}, fmt.Errorf("в токене отсутствует id")
	}

	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)

	return Subject{UserID: userID, Name: name, Email: email}, nil
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Method: %s, URL: %s", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
