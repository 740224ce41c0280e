// Package commands defines the ledgerctl CLI, a client for a running
// splitledger server.
//
// Commands
//
//   - register      Create an account and print a session token
//   - login         Sign in and print a session token
//   - whoami        Show the signed-in account
//   - people        List, add and remove people
//   - expenses      List, add and remove expenses
//   - settle        Record a payment between two people
//   - settlements   List and remove settlements
//   - balances      Show who owes whom
//
// People are addressed by name; commands resolve names to IDs with a
// ListPeople call before sending the request. The session token comes from
// --token or LEDGERCTL_TOKEN.
package commands
