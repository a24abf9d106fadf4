package handlers

import "github.com/gin-gonic/gin"

// One-line validation banners ride a short-lived cookie, read-and-clear.
const flashCookieName = "flash"

func setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookieName, msg, 60, "/", "", false, true)
}

func popFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookieName)
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	return msg
}
