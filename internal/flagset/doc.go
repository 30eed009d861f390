// Package flagset is the real parser that option declarations are forwarded
// to. It applies the declaration-time checks an argparse-style parser makes
// (option string shape, known keywords and actions, callable types,
// conflicting option strings) and registers every optional argument on a
// pflag.FlagSet, so a declaration the pipeline itself would reject is rejected
// here as well.
package flagset
