package value

import (
	"strconv"
	"strings"

	"github.com/rez-lang/rez/parse"
)

// Literal recognizes one attribute-value literal: number, string, boolean,
// keyword, ref, list, set, function or behaviour tree. It pushes exactly
// one Value.
func Literal() parse.Parser {
	return func(c parse.Context) parse.Context {
		return literalChoice()(c)
	}
}

// literalChoice is built lazily so the behaviour-tree and function/list/set
// parsers, which recurse back into Literal, don't need Literal to exist yet
// at package init time.
func literalChoice() parse.Parser {
	return parse.Choice(
		numberLiteral(),
		stringLiteral(),
		booleanLiteral(),
		keywordLiteral(),
		refLiteral(),
		btreeNode(),
		funcOrKeywordCall(),
		listLiteral(),
		setLiteral(),
	)
}

func numberLiteral() parse.Parser {
	return func(c parse.Context) parse.Context {
		c = parse.WS()(c)
		if !c.Ok() {
			return c
		}

		start := c

		var sb strings.Builder

		if r, ok := c.Peek(); ok && r == '-' {
			sb.WriteRune(r)
			c = c.Advance()
		}

		digits := 0

		for {
			r, ok := c.Peek()
			if !ok || r < '0' || r > '9' {
				break
			}

			sb.WriteRune(r)
			c = c.Advance()
			digits++
		}

		if digits == 0 {
			return start.Fail("expected number")
		}

		if r, ok := c.Peek(); ok && r == '.' {
			save := c
			c = c.Advance()

			var frac strings.Builder

			for {
				r, ok := c.Peek()
				if !ok || r < '0' || r > '9' {
					break
				}

				frac.WriteRune(r)
				c = c.Advance()
			}

			if frac.Len() == 0 {
				c = save
			} else {
				sb.WriteByte('.')
				sb.WriteString(frac.String())
			}
		}

		n, err := strconv.ParseFloat(sb.String(), 64)
		if err != nil {
			return start.Fail("invalid number literal: " + err.Error())
		}

		return c.Push(Number(n))
	}
}

func stringLiteral() parse.Parser {
	return func(c parse.Context) parse.Context {
		c = parse.WS()(c)
		if !c.Ok() {
			return c
		}

		start := c

		r, ok := c.Peek()
		if !ok || r != '"' {
			return start.Fail("expected string")
		}

		c = c.Advance()

		var sb strings.Builder

		for {
			r, ok := c.Peek()
			if !ok {
				return start.Fail("unterminated string literal")
			}

			if r == '"' {
				c = c.Advance()
				return c.Push(String(sb.String()))
			}

			if r == '\\' {
				c = c.Advance()

				esc, ok := c.Peek()
				if !ok {
					return start.Fail("unterminated string literal")
				}

				switch esc {
				case '"':
					sb.WriteByte('"')
				case '\\':
					sb.WriteByte('\\')
				case 'n':
					sb.WriteByte('\n')
				case 't':
					sb.WriteByte('\t')
				default:
					sb.WriteRune(esc)
				}

				c = c.Advance()

				continue
			}

			sb.WriteRune(r)
			c = c.Advance()
		}
	}
}

func booleanLiteral() parse.Parser {
	lit := parse.Map(
		parse.Choice(parse.Literal("true"), parse.Literal("false")),
		func(v interface{}) interface{} {
			return Boolean(v.(string) == "true")
		},
	)

	return func(c parse.Context) parse.Context {
		return lit(parse.WS()(c))
	}
}

// KeywordLiteral exposes the ":ident" keyword grammar for callers outside
// this package that need a bare keyword token rather than a full literal
// choice - the derive statement's `@derive <:tag> <:parent>` shape.
func KeywordLiteral() parse.Parser {
	return keywordLiteral()
}

func keywordLiteral() parse.Parser {
	return func(c parse.Context) parse.Context {
		c = parse.WS()(c)
		if !c.Ok() {
			return c
		}

		start := c

		r, ok := c.Peek()
		if !ok || r != ':' {
			return start.Fail("expected keyword")
		}

		c = c.Advance()

		c = parse.Identifier()(c)
		if !c.Ok() {
			return start.Fail("expected identifier after ':'")
		}

		var vals []interface{}
		c, vals = c.SliceFrom(c.Mark() - 1)

		return c.Push(Keyword(vals[0].(string)))
	}
}

func refLiteral() parse.Parser {
	return func(c parse.Context) parse.Context {
		c = parse.WS()(c)
		if !c.Ok() {
			return c
		}

		start := c

		r, ok := c.Peek()
		if !ok || r != '#' {
			return start.Fail("expected ref")
		}

		c = c.Advance()

		if r2, ok := c.Peek(); ok && r2 == '{' {
			return start.Fail("expected ref, found set")
		}

		c = parse.Identifier()(c)
		if !c.Ok() {
			return start.Fail("expected identifier after '#'")
		}

		var vals []interface{}
		c, vals = c.SliceFrom(c.Mark() - 1)

		return c.Push(ElemRef(vals[0].(string)))
	}
}

func listLiteral() parse.Parser {
	return func(c parse.Context) parse.Context {
		c = parse.WS()(c)
		if !c.Ok() {
			return c
		}

		start := c

		r, ok := c.Peek()
		if !ok || r != '[' {
			return start.Fail("expected list")
		}

		c = c.Advance()

		base := c.Mark()

		for {
			c = parse.WS()(c)

			if r, ok := c.Peek(); ok && r == ']' {
				break
			}

			c = literalChoice()(c)
			if !c.Ok() {
				return c
			}
		}

		c = parse.WS()(c)
		r, ok = c.Peek()
		if !ok || r != ']' {
			return start.Fail("expected ']'")
		}

		c = c.Advance()

		var raw []interface{}
		c, raw = c.SliceFrom(base)

		return c.Push(List(toValues(raw)))
	}
}

func setLiteral() parse.Parser {
	return func(c parse.Context) parse.Context {
		c = parse.WS()(c)
		if !c.Ok() {
			return c
		}

		start := c

		r, ok := c.Peek()
		if !ok || r != '#' {
			return start.Fail("expected set")
		}

		c = c.Advance()

		r, ok = c.Peek()
		if !ok || r != '{' {
			return start.Fail("expected '{' after '#'")
		}

		c = c.Advance()

		base := c.Mark()

		for {
			c = parse.WS()(c)

			if r, ok := c.Peek(); ok && r == '}' {
				break
			}

			c = literalChoice()(c)
			if !c.Ok() {
				return c
			}
		}

		c = parse.WS()(c)
		r, ok = c.Peek()
		if !ok || r != '}' {
			return start.Fail("expected '}'")
		}

		c = c.Advance()

		var raw []interface{}
		c, raw = c.SliceFrom(base)

		return c.Push(Set(toValues(raw)))
	}
}

// funcOrKeywordCall recognizes `ident(arg, ...)`, a function-typed
// attribute value.
func funcOrKeywordCall() parse.Parser {
	return func(c parse.Context) parse.Context {
		c = parse.WS()(c)
		if !c.Ok() {
			return c
		}

		start := c

		c = parse.Identifier()(c)
		if !c.Ok() {
			return start.Fail("expected function name")
		}

		var names []interface{}
		c, names = c.SliceFrom(c.Mark() - 1)
		name := names[0].(string)

		c = parse.WS()(c)

		r, ok := c.Peek()
		if !ok || r != '(' {
			return start.Fail("expected '(' after function name")
		}

		c = c.Advance()

		var args []Value

		var params []string

		for {
			c = parse.WS()(c)

			if r, ok := c.Peek(); ok && r == ')' {
				break
			}

			paramName, afterName := tryParamName(c)

			if afterName.Ok() {
				c = afterName
				params = append(params, paramName)
			}

			argBase := c.Mark()

			c = literalChoice()(c)
			if !c.Ok() {
				return c
			}

			var argVals []interface{}
			c, argVals = c.SliceFrom(argBase)
			args = append(args, argVals[0].(Value))

			if (paramName == "" && len(params) > 0) || (paramName != "" && len(params) != len(args)) {
				return start.Fail("cannot mix named and positional arguments")
			}

			c = parse.WS()(c)

			if r, ok := c.Peek(); ok && r == ',' {
				c = c.Advance()

				continue
			}

			break
		}

		c = parse.WS()(c)

		r, ok = c.Peek()
		if !ok || r != ')' {
			return start.Fail("expected ')'")
		}

		c = c.Advance()

		return c.Push(FuncVal(&Func{Name: name, Args: args, Params: params}))
	}
}

// btreeNode recognizes the nested behaviour-tree form:
// task_id<key: value, ...> { child* }
func btreeNode() parse.Parser {
	return func(c parse.Context) parse.Context {
		c = parse.WS()(c)
		if !c.Ok() {
			return c
		}

		start := c

		c = parse.Identifier()(c)
		if !c.Ok() {
			return start.Fail("expected task id")
		}

		var names []interface{}
		c, names = c.SliceFrom(c.Mark() - 1)
		taskID := names[0].(string)

		c = parse.WS()(c)

		r, ok := c.Peek()
		if !ok || r != '<' {
			return start.Fail("expected '<' to open a behaviour tree node")
		}

		c = c.Advance()

		opts := map[string]Value{}

		for {
			c = parse.WS()(c)

			if r, ok := c.Peek(); ok && r == '>' {
				break
			}

			c = parse.Identifier()(c)
			if !c.Ok() {
				return c
			}

			var keyVals []interface{}
			c, keyVals = c.SliceFrom(c.Mark() - 1)
			key := keyVals[0].(string)

			c = parse.WS()(c)

			r, ok := c.Peek()
			if !ok || r != ':' {
				return start.Fail("expected ':' in behaviour tree option")
			}

			c = c.Advance()

			c = literalChoice()(c)
			if !c.Ok() {
				return c
			}

			var valVals []interface{}
			c, valVals = c.SliceFrom(c.Mark() - 1)
			opts[key] = valVals[0].(Value)

			c = parse.WS()(c)

			if r, ok := c.Peek(); ok && r == ',' {
				c = c.Advance()

				continue
			}

			break
		}

		c = parse.WS()(c)

		r, ok = c.Peek()
		if !ok || r != '>' {
			return start.Fail("expected '>' to close a behaviour tree node")
		}

		c = c.Advance()

		children := []Node{}

		c = parse.WS()(c)

		if r, ok := c.Peek(); ok && r == '{' {
			c = c.Advance()

			for {
				c = parse.WS()(c)

				if r, ok := c.Peek(); ok && r == '}' {
					break
				}

				base := c.Mark()

				c = btreeNode()(c)
				if !c.Ok() {
					return c
				}

				var childVals []interface{}
				c, childVals = c.SliceFrom(base)
				childVal := childVals[0].(Value)
				children = append(children, *childVal.BTree)
			}

			c = parse.WS()(c)

			r, ok = c.Peek()
			if !ok || r != '}' {
				return start.Fail("expected '}' to close behaviour tree children")
			}

			c = c.Advance()
		}

		return c.Push(BTreeVal(&Node{TaskID: taskID, Options: opts, Children: children}))
	}
}

// tryParamName probes for a "name:" prefix (a named function argument)
// without committing to it: on failure the returned Context carries an
// error and must be discarded, not threaded back into the caller's state.
func tryParamName(c parse.Context) (string, parse.Context) {
	attempt := parse.Identifier()(c)
	if !attempt.Ok() {
		return "", attempt
	}

	var names []interface{}
	attempt, names = attempt.SliceFrom(attempt.Mark() - 1)
	name := names[0].(string)

	attempt = parse.WS()(attempt)

	r, ok := attempt.Peek()
	if !ok || r != ':' {
		return "", attempt.Fail("not a named argument")
	}

	attempt = attempt.Advance()

	return name, attempt
}

func toValues(raw []interface{}) []Value {
	vals := make([]Value, 0, len(raw))
	for _, r := range raw {
		vals = append(vals, r.(Value))
	}

	return vals
}
