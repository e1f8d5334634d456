package branch

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Validator define a interface para validação de filial
type Validator interface {
	ValidateBranch(branchID string) (bool, error)
}

// errorBody é a resposta de erro do middleware.
// Espelha dto.ErrorResponse sem criar dependência do pacote de DTOs.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Middleware cria um middleware para capturar e validar o cabeçalho branch-id.
// Toda entidade do sistema é particionada por filial; as rotas protegidas
// exigem uma filial ativa.
func Middleware(validator Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		branchID := c.GetHeader("branch-id")
		if branchID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{
				Code:    http.StatusBadRequest,
				Message: "Branch ID não fornecido",
				Details: "O cabeçalho 'branch-id' é obrigatório",
			})
			return
		}

		valid, err := validator.ValidateBranch(branchID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody{
				Code:    http.StatusInternalServerError,
				Message: "Erro ao validar filial",
				Details: err.Error(),
			})
			return
		}

		if !valid {
			c.AbortWithStatusJSON(http.StatusForbidden, errorBody{
				Code:    http.StatusForbidden,
				Message: "Filial inválida",
				Details: "A filial informada não existe ou está inativa",
			})
			return
		}

		c.Set("branch_id", branchID)
		c.Request = c.Request.WithContext(SetBranchIDContext(c.Request.Context(), branchID))

		c.Next()
	}
}
