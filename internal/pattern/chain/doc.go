// Package chain implements Chain of Responsibility as an explicit singly linked
// list of handlers walked by a loop.
//
// Adding a handler always walks to the tail and appends; the head is never
// replaced and a handler is never dropped. How the walk is turned into a result
// is decided by an injected Policy:
//
//   - FirstMatch: the first handler that returns Stop wins; an exhausted chain
//     yields the fallback. Routing and validation use this.
//   - ConsumeAndForward: every visited handler applies its effect; Stop only
//     halts the remaining handlers. The last produced result is returned.
package chain
