// Package ui contains the Bubble Tea program that powers the menu screens.
// The Model type focuses on message orchestration, while dedicated helpers
// own key handling, the add-dish form, notices and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry. Key
//     presses go to handleKeyMsg, which lets an open notice swallow the key,
//     then handles global keys (navigation, theme, quit) and finally
//     dispatches to exactly one per-mode handler: handleHomeKey,
//     handleAddMenuKey or handleFilterKey.
//   - Handlers never touch the menu directly. They build a state.Action and
//     pass it to Model.dispatch, which runs it through the command bus and
//     turns the resulting Outcome into a notice when the user must be told.
//
// State ownership:
//   - The menu itself (dishes, draft, view mode, filter, theme flag, search
//     query) lives in a single state.State value owned by the Model and
//     replaced wholesale on every transition.
//   - Text widgets (bubbles textinput/textarea) hold editing state such as
//     the caret; after every edit their value is copied into the draft, and
//     after a successful add the draft is copied back into them.
//   - Row highlighting and body scroll live in internal/ui/state and in a
//     bubbles viewport; neither is part of the menu's state tree.
//
// Rendering:
//   - View switches once over state.Mode and calls a single render function
//     per screen. Each returns the body lines plus the span that must stay
//     on screen (the focused field or highlighted row), which drives the
//     viewport offset. The navigation bar and key hints are drawn below the
//     body on every screen.
package ui
