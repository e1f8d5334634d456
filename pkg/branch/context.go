package branch

import (
	"context"
)

// branchIDKey é a chave usada para armazenar o branch_id no contexto
type branchIDKey struct{}

// SetBranchIDContext armazena o branch_id em um context.Context
func SetBranchIDContext(ctx context.Context, branchID string) context.Context {
	return context.WithValue(ctx, branchIDKey{}, branchID)
}

// GetBranchID recupera o branch_id do contexto, se existir
func GetBranchID(ctx context.Context) string {
	if branchID, ok := ctx.Value(branchIDKey{}).(string); ok {
		return branchID
	}
	return ""
}
