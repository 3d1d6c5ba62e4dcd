// Package waterfilter models the filters of a clean-water plant.
//
// Every filter kind implements [Filter]. Shared identity and usage state lives
// in an embedded base that validates each mutation, so a filter can never hold
// an empty ID or a negative usage count. The base also supplies the default
// [Filter.CalculateEfficiency]; a kind may shadow it with its own method.
//
// Kinds are looked up by name through a [Registry]:
//
//	f, err := waterfilter.DefaultRegistry().New("chemical", "CHEM-101", 0)
//	if err != nil {
//	    return err
//	}
//
//	if err := f.Process(os.Stdout); err != nil {
//	    return err
//	}
package waterfilter
