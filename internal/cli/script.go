package cli

import "strings"

// DemoScript builds the arithmetic demo graph for the math module: two
// constants feeding an adder and a subtractor, both wired into one
// printer. Evaluating it prints "12 -2".
const DemoScript = `
create v1 constant 5
create v2 constant 7
create a1 binop add
create s1 binop sub
create p1 printer
connect v1.out a1.a
connect v2.out a1.b
connect v1.out s1.a
connect v2.out s1.b
connect a1.res p1.in
connect s1.res p1.in
`

// SplitScript turns a script blob into the command lines Shell expects,
// trimming whitespace and dropping blank lines.
func SplitScript(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
