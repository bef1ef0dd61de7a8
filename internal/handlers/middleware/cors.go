package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS configura CORS para a aplicação.
// allowedOrigins é uma lista separada por vírgulas; "*" libera qualquer origem.
func CORS(allowedOrigins string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Accept-Language"},
		ExposeHeaders: []string{"Content-Length", "Content-Language"},
		MaxAge:        12 * time.Hour,
	}

	origins := make([]string, 0)
	for _, o := range strings.Split(allowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o == "*" {
			config.AllowAllOrigins = true
			origins = nil
			break
		}
		if o != "" {
			origins = append(origins, o)
		}
	}

	if !config.AllowAllOrigins {
		if len(origins) == 0 {
			// cors.New rejeita configuração sem origens
			origins = []string{"http://localhost"}
		}
		config.AllowOrigins = origins
	}

	return cors.New(config)
}
