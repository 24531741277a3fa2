package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// passthroughCmds names the commands whose unrecognized arguments are
// forwarded to the engine's run command instead of being flag errors.
var passthroughCmds = map[string]bool{
	"pg":    true,
	"mysql": true,
}

// rewriteArgs moves arguments a launch command doesn't recognize behind a
// -- separator, so flag parsing accepts the rest and the unrecognized
// arguments reach the passthrough list untouched and in order.
// `dbup pg --memory 512m` becomes `dbup pg -- --memory 512m`.
func rewriteArgs(args []string) []string {
	var sub *cobra.Command
	cmdIdx := -1
	for i, a := range args {
		if a == "--" {
			break
		}
		if strings.HasPrefix(a, "-") {
			// Root flags are all booleans, so they never consume the
			// next argument.
			continue
		}
		for _, c := range rootCmd.Commands() {
			if c.Name() == a && passthroughCmds[a] {
				sub, cmdIdx = c, i
			}
		}
		break
	}
	if sub == nil {
		return args
	}

	own, extra := splitArgs(sub, args[cmdIdx+1:])
	if len(extra) == 0 {
		return args
	}

	out := append([]string{}, args[:cmdIdx+1]...)
	out = append(out, own...)
	out = append(out, "--")
	return append(out, extra...)
}

// splitArgs partitions a launch command's arguments into the flags the
// command itself declares (with their values) and everything else. Unknown
// flags, their value-looking successors, and bare positionals all land in
// extra, preserving their relative order. Arguments after -- are always
// extra, even when they would parse as known flags.
func splitArgs(cmd *cobra.Command, args []string) (own, extra []string) {
	persistent := cmd.Root().PersistentFlags()
	lookupLong := func(name string) *pflag.Flag {
		if f := cmd.Flags().Lookup(name); f != nil {
			return f
		}
		return persistent.Lookup(name)
	}
	lookupShort := func(shorthand string) *pflag.Flag {
		if f := cmd.Flags().ShorthandLookup(shorthand); f != nil {
			return f
		}
		return persistent.ShorthandLookup(shorthand)
	}
	needsValue := func(f *pflag.Flag) bool {
		return f.Value.Type() != "bool"
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return own, append(extra, args[i+1:]...)
		case arg == "--help" || arg == "-h":
			// The help flag is registered by cobra at execute time, so it
			// is not in the flag set yet.
			own = append(own, arg)
		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			f := lookupLong(name)
			if f == nil {
				extra = append(extra, arg)
				continue
			}
			own = append(own, arg)
			if !hasValue && needsValue(f) && i+1 < len(args) {
				i++
				own = append(own, args[i])
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			f := lookupShort(arg[1:2])
			if f == nil {
				extra = append(extra, arg)
				continue
			}
			own = append(own, arg)
			// A two-character token like -n takes its value from the next
			// argument; longer tokens (-nfoo, -n=foo) carry it inline.
			if len(arg) == 2 && needsValue(f) && i+1 < len(args) {
				i++
				own = append(own, args[i])
			}
		default:
			extra = append(extra, arg)
		}
	}
	return own, extra
}
