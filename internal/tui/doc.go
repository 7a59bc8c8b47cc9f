// Package tui implements the interactive terminal interface of learnquest.
//
// Built on Bubble Tea, it follows the Elm architecture: AppModel holds the
// catalog and a viewstate.State, Update feeds key presses through
// viewstate.Reduce, and View renders a pure function of the two.
//
// # Effects
//
// Reduce returns effects instead of performing them. AppModel turns them
// into commands:
//   - PlayTone: a command that hands the frequency to the tone player
//   - StartTimer: tea.Tick delivering a celebrationDoneMsg with the token
//   - StopTimer: nothing; the superseded tick arrives with a stale token
//     and Reduce ignores it
//
// # Layout
//
// Every screen is wrapped by RenderApplicationContainer (header with the
// profile summary, tab bar, content, help footer). The crystal detail view,
// the celebration and the help screen are modals drawn with RenderModal.
// At most one modal is visible.
//
// # Key Bindings
//
//   - tab/→ and shift+tab/← switch tabs, 1-7 jump to a tab
//   - ↑/↓ move the cursor in list sections
//   - enter opens a crystal (collection, map) or completes a game,
//     practice or unlocked achievement, which triggers a celebration
//   - esc closes a modal, ? shows help, q quits
//
// # Usage Example
//
//	cat, _ := catalog.Load(catalog.ThemeCrystals)
//	app := tui.NewAppModel(tui.Options{Catalog: cat, Tones: player})
//	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
//	    return err
//	}
package tui
