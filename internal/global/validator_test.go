package global

import (
	"testing"

	salesdto "retail_sales/internal/api/sales/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_SalesQueryInput(t *testing.T) {
	InitValidator()

	// Query rỗng và sort key hợp lệ đều pass
	require.NoError(t, Validate.Struct(&salesdto.SalesQueryInput{}))
	require.NoError(t, Validate.Struct(&salesdto.SalesQueryInput{SortBy: "amount_desc"}))

	// Sort key ngoài tập hỗ trợ bị chặn bởi validator sort_key
	assert.Error(t, Validate.Struct(&salesdto.SalesQueryInput{SortBy: "bogus"}))

	// Search chứa pattern nguy hiểm bị chặn bởi validator no_xss
	assert.Error(t, Validate.Struct(&salesdto.SalesQueryInput{Search: "<script>alert(1)</script>"}))
}
