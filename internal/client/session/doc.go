// Package session owns the client-side authentication state of the
// CareerCompass client: the durable single-slot session store, the
// provider that holds the in-memory state machine and mediates every
// authenticated operation, and the gate consulted before entering
// protected views.
//
// Ownership rules: the provider exclusively owns the in-memory user record
// and is the only writer of the store; the gate reads the provider and
// nothing else.
package session
