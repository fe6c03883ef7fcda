// Package account models registered users and their delivery profiles.
// Registration and profile provisioning are distinct steps: an account can
// exist without contact details, but cannot place orders until they are
// provisioned.
package account
