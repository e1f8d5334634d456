package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// errorBody é a resposta de erro do middleware
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// JWTAuthMiddleware cria um middleware para autenticação JWT
func JWTAuthMiddleware() gin.HandlerFunc {
	jwtService, err := NewJWTService()
	if err != nil {
		// Se não conseguir criar o serviço JWT, retornar erro 500
		return func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody{
				Code:    http.StatusInternalServerError,
				Message: "Erro ao configurar autenticação",
				Details: "O serviço JWT não foi inicializado corretamente",
			})
		}
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{
				Code:    http.StatusUnauthorized,
				Message: "Autenticação requerida",
				Details: "O cabeçalho Authorization não foi fornecido",
			})
			return
		}

		// Verificar o formato "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{
				Code:    http.StatusUnauthorized,
				Message: "Formato de token inválido",
				Details: "Use o formato 'Bearer <token>'",
			})
			return
		}

		claims, err := jwtService.ValidateToken(tokenParts[1])
		if err != nil {
			message := "Token inválido"
			if err == ErrExpiredToken {
				message = "Token expirado"
			}

			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{
				Code:    http.StatusUnauthorized,
				Message: message,
				Details: err.Error(),
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_name", claims.Name)
		c.Set("user_role", claims.Role)
		c.Set("user_branch_ids", claims.BranchIDs)

		c.Next()
	}
}

// RoleAuthMiddleware cria um middleware para verificação de papel/função do usuário
func RoleAuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRoleVal, exists := c.Get("user_role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{
				Code:    http.StatusUnauthorized,
				Message: "Autenticação requerida",
				Details: "Usuário não autenticado",
			})
			return
		}

		userRole, ok := userRoleVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody{
				Code:    http.StatusInternalServerError,
				Message: "Erro ao verificar permissões",
				Details: "Papel do usuário em formato inválido",
			})
			return
		}

		for _, role := range roles {
			if role == userRole {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, errorBody{
			Code:    http.StatusForbidden,
			Message: "Acesso negado",
			Details: "O usuário não tem permissão para acessar este recurso",
		})
	}
}
