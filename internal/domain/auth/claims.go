package auth

// Claim keys carried by access tokens.
const (
	ClaimUserID     = "user_id"
	ClaimEmployeeID = "employee_id"
	ClaimEmail      = "email"
	ClaimIsAdmin    = "is_admin"
	ClaimType       = "type"

	TokenTypeAccess = "access"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID string
	// EmployeeID links the account to an employee. Empty for accounts
	// without an employee profile.
	EmployeeID string
	Email      string
	IsAdmin    bool
}

// PrincipalFromClaims reads a Principal out of verified token claims.
func PrincipalFromClaims(claims map[string]interface{}) (Principal, error) {
	userID, ok := claims[ClaimUserID].(string)
	if !ok || userID == "" {
		return Principal{}, ErrInvalidToken
	}
	employeeID, _ := claims[ClaimEmployeeID].(string)
	email, _ := claims[ClaimEmail].(string)
	isAdmin, _ := claims[ClaimIsAdmin].(bool)

	return Principal{UserID: userID, EmployeeID: employeeID, Email: email, IsAdmin: isAdmin}, nil
}
