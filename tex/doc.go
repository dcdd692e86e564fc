// Package tex provides the fundamental building blocks of a LaTeX source
// tree: text fragments, commands, and recursively nestable environments.
//
// What:
//
//   - Renderer is the single contract every body element satisfies.
//   - Text is a verbatim LaTeX fragment.
//   - Environment is an ordered container of Renderers wrapped in
//     \begin{tag}...\end{tag}, with parameters, options and a label.
//   - Command renders a one-line \name[options]{arg}... call.
//
// Why:
//
//   - One recursive Render traversal guarantees every \begin has a
//     matching \end and that body order is rendering order.
//   - Package requirements (\usepackage lines) propagate bottom-up:
//     Packages() aggregates the declarations of an environment and of
//     every body element that carries its own.
//
// Rendering is a pure fold: no state changes, identical output on
// repeated calls. Trees are built by a single owner goroutine; there is
// no internal locking, and concurrent mutation is undefined.
//
// Errors: none. Malformed trees are prevented by construction — New and
// Add panic on nil children, which is a programmer error, not a runtime
// condition.
package tex
