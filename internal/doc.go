// Package internal defines the Task domain types shared by every layer of the service.
package internal
