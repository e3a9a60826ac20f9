package mphf

import (
	"fmt"

	"github.com/katalvlaran/mphf/hashalgo"
	"github.com/katalvlaran/mphf/table"
)

// renderText produces the bit-exact pseudo-code rendering downstream
// tooling parses: four lines, no trailing blank beyond the final newline.
func renderText(rlt *table.Rlt, algo hashalgo.HashAlgorithm) string {
	return fmt.Sprintf(
		"row_lookup_table = [%s]\nrow_index = %s\ncol_index = %s\nhash_value = (row_lookup_table[row_index] + col_index) %% %d\n",
		rlt.Text(), algo.H1Text(), algo.H2Text(), rlt.NumEntries(),
	)
}
