package rez

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rez-lang/rez/node"
	"github.com/rez-lang/rez/token"
	"github.com/rez-lang/rez/value"
)

// idNamespace anchors the deterministic ids generated for auto-id blocks
// that lack a natural naming attribute. Any fixed UUID works as a
// namespace; what matters is that it never changes between runs.
var idNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// generatedID derives a stable id from a block's source position and
// label via uuid.NewSHA1, rather than uuid.New, so that parsing the same
// source twice yields the same id both times - determinism of the
// identifier map is a tested property.
func generatedID(pos token.Pos, label string) string {
	data := fmt.Sprintf("%s:%d:%d:%s", pos.File, pos.Line, pos.Col, label)
	return uuid.NewSHA1(idNamespace, []byte(data)).String()
}

// nameOrGenerated returns a slug of the block's "name" string attribute
// when present, or a generated id otherwise - the id_fn every auto-id
// block in this grammar uses.
func nameOrGenerated(label string) func(node.AttrMap, token.Pos) string {
	return func(attrs node.AttrMap, pos token.Pos) string {
		if n, ok := attrs["name"]; ok && n.Value.Type == value.TypeString && n.Value.String != "" {
			return slugify(n.Value.String)
		}

		return generatedID(pos, label)
	}
}

func slugify(s string) string {
	var sb strings.Builder

	lastDash := false

	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				sb.WriteByte('_')
				lastDash = true
			}
		}
	}

	return strings.Trim(sb.String(), "_")
}
