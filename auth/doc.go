// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token and ID generation.

There is no organizer authentication; the user key is supplied by the
caller. Judges are identified only by the token in their link.

# Submission Tokens

Submission tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateSubmissionToken()

Tokens are URL-safe base64 encoded without padding and appear in the judge's
link as /s/{token}. They are unique across all users.

# ID Generation

Entities saved without an id get a UUIDv7:

	id := auth.NewID()
*/
package auth
