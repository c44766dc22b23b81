package api

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stanley-ops/stanley/pkg/config"
)

// UserInfo is the identity resolved for a request from the Easy Auth
// proxy headers (or a fixed test identity in local mode).
type UserInfo struct {
	UserID          string  `json:"user_id"`
	UserName        string  `json:"user_name"`
	FirstName       string  `json:"first_name,omitempty"`
	PrincipalName   *string `json:"principal_name,omitempty"`
	IsAuthenticated bool    `json:"is_authenticated"`
	Mode            string  `json:"mode"`
}

// principalClaims is the decoded X-Ms-Client-Principal payload.
type principalClaims struct {
	Claims []struct {
		Typ string `json:"typ"`
		Val string `json:"val"`
	} `json:"claims"`
}

// currentUser resolves the caller identity. Local mode uses a fixed test
// identity; the durable modes read the auth proxy's headers.
func currentUser(c *gin.Context, mode config.ChatHistoryMode) UserInfo {
	if mode == config.HistoryModeLocal {
		return UserInfo{
			UserID:          "local-test-user",
			UserName:        "Local Test User",
			FirstName:       "Local",
			IsAuthenticated: true,
			Mode:            string(mode),
		}
	}

	principalID := c.GetHeader("X-Ms-Client-Principal-Id")
	principalName := c.GetHeader("X-Ms-Client-Principal-Name")
	principal := c.GetHeader("X-Ms-Client-Principal")

	info := UserInfo{
		UserID:          "unknown",
		UserName:        "Unknown user",
		FirstName:       "there",
		IsAuthenticated: principalID != "" && principal != "",
		Mode:            string(mode),
	}
	if principalID != "" {
		info.UserID = principalID
	}
	if principalName != "" {
		info.PrincipalName = &principalName
	}
	if name := displayNameFromPrincipal(principal); name != "" {
		info.UserName = name
		if fields := strings.Fields(name); len(fields) > 0 {
			info.FirstName = fields[0]
		}
	}
	return info
}

// displayNameFromPrincipal extracts the "name" claim from the
// base64-encoded principal header. Malformed headers yield "".
func displayNameFromPrincipal(header string) string {
	if header == "" {
		return ""
	}
	raw, err := base64.StdEncoding.DecodeString(header)
	if err != nil {
		return ""
	}
	var decoded principalClaims
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return ""
	}
	for _, claim := range decoded.Claims {
		if claim.Typ == "name" {
			return claim.Val
		}
	}
	return ""
}
