package security

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// LoginCookieName carries the login token for browser sessions; API
// clients send the same token as a bearer header instead.
const LoginCookieName = "folium_login"

// LoginClaims is the payload of tokens minted by the identity service.
// This service only verifies them, it never issues any.
type LoginClaims struct {
	jwt.RegisteredClaims

	Name string `json:"name"`
	Nick string `json:"nick"`
}

func ParseLoginToken(raw string) (LoginClaims, error) {
	var claims LoginClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		return []byte(viper.GetString("security.login_token_secret")), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return claims, fmt.Errorf("unable to parse login token: %v", err)
	}
	if !token.Valid {
		return claims, fmt.Errorf("login token is invalid")
	}
	if len(claims.Name) == 0 {
		return claims, fmt.Errorf("login token has no username")
	}

	return claims, nil
}
