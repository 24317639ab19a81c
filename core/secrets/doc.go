// Package secrets keeps the Notion integration token in the OS keychain.
//
// Tokens are stored per database id under the "application-sync" service, with a
// "default" account used when no database id is given. The environment always
// takes precedence; the keychain is only consulted when NOTION_TOKEN is unset.
package secrets
