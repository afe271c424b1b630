package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"adaptivegame/internal/shared/config"
	"adaptivegame/internal/shared/constants"
	"adaptivegame/internal/shared/logger"
	"adaptivegame/internal/shared/utils"
)

// GateAction is the decision the session gate takes for one request.
type GateAction int

const (
	GateAllow GateAction = iota
	GateRedirect
)

// GateDecision pairs an action with its redirect target. Target is empty for
// GateAllow.
type GateDecision struct {
	Action GateAction
	Target string
}

// DecideGate is the pure routing rule table: given only the request path and
// whether a session token is present, it decides whether the request passes
// or where it redirects. Rules are checked in order:
//
//	protected path without token  -> /login?from=<path>
//	login path with token         -> /dashboard
//	root with token               -> /dashboard
//	root without token            -> /login
//	anything else                 -> allow
func DecideGate(path string, hasToken bool) GateDecision {
	isAuthRoute := strings.HasPrefix(path, constants.RouteLogin)
	isProtectedRoute := strings.HasPrefix(path, constants.RouteDashboard)
	isRootRoute := path == constants.RouteRoot

	switch {
	case isProtectedRoute && !hasToken:
		return GateDecision{
			Action: GateRedirect,
			Target: constants.RouteLogin + "?" + constants.QueryParamFrom + "=" + url.QueryEscape(path),
		}
	case isAuthRoute && hasToken:
		return GateDecision{Action: GateRedirect, Target: constants.RouteDashboard}
	case isRootRoute && hasToken:
		return GateDecision{Action: GateRedirect, Target: constants.RouteDashboard}
	case isRootRoute:
		return GateDecision{Action: GateRedirect, Target: constants.RouteLogin}
	default:
		return GateDecision{Action: GateAllow}
	}
}

// SessionGate applies DecideGate to page requests and, on protected paths,
// loads the session user into the request context.
type SessionGate struct {
	loadUser func(c *gin.Context, userID uint) bool
	cookie   config.CookieConfig
	logger   logger.Interface
}

func NewSessionGate(loadUser func(c *gin.Context, userID uint) bool, cookie config.CookieConfig, logger logger.Interface) *SessionGate {
	return &SessionGate{
		loadUser: loadUser,
		cookie:   cookie,
		logger:   logger,
	}
}

// Handle is the gin middleware form of the gate.
func (g *SessionGate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, hasToken := utils.GetSessionUserID(c)

		decision := DecideGate(c.Request.URL.Path, hasToken)
		if decision.Action == GateRedirect {
			c.Redirect(http.StatusFound, decision.Target)
			c.Abort()
			return
		}

		if hasToken && strings.HasPrefix(c.Request.URL.Path, constants.RouteDashboard) {
			if !g.loadUser(c, userID) {
				// Cookie names a user the store no longer honors.
				utils.ClearSessionCookie(c, g.cookie)
				c.Redirect(http.StatusFound, constants.RouteLogin)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
