package cli

import "strings"

// normalizeArgs prepares the raw arguments for cobra:
//   - a demo flag with no value ("--builder" at the end, or followed by
//     another flag) becomes "--builder=" so it still selects the demo and
//     the demo reports the missing value;
//   - a repeated demo flag is dropped with its value, so the first
//     occurrence wins.
func normalizeArgs(args []string, demoFlags []string) []string {
	known := make(map[string]string, len(demoFlags))
	for _, f := range demoFlags {
		known["--"+f] = f
	}
	seen := make(map[string]bool, len(demoFlags))

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			out = append(out, args[i:]...)
			break
		}

		name, inline := a, false
		if eq := strings.IndexByte(a, '='); eq > 0 {
			name, inline = a[:eq], true
		}
		flag, ok := known[name]
		if !ok {
			out = append(out, a)
			continue
		}

		hasValue := inline || (i+1 < len(args) && !strings.HasPrefix(args[i+1], "-"))
		if seen[flag] {
			if hasValue && !inline {
				i++
			}
			continue
		}
		seen[flag] = true

		if !hasValue {
			out = append(out, a+"=")
			continue
		}
		out = append(out, a)
	}
	return out
}
