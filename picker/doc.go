// Package picker asks the user to choose one of a few labeled options in the
// terminal.
//
// A session puts the terminal into raw mode, draws the options either inline
// on a single line or on the alternate screen, and reads keys until the user
// confirms with Enter or cancels with Escape or Ctrl+C. The terminal mode is
// restored before the call returns, whether it succeeds, fails or panics.
//
//	o, err := picker.ParseOptions("Yes", "Maybe", "So so", "No")
//	if err != nil {
//		return err
//	}
//	label, ok, err := picker.Choose("Do you like it?", o)
//	switch {
//	case err != nil:
//		return err
//	case !ok:
//		fmt.Println("cancelled")
//	default:
//		fmt.Println("picked", label)
//	}
//
// Arrow keys, Tab and Shift+Tab move the cursor; typing an item's shortcut
// key jumps to it. Use New with a Config for the alternate screen, wrapping
// navigation, custom delimiters or descriptions.
package picker
