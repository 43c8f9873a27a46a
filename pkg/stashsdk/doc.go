/*
Package stashsdk provides a client SDK for the Stash service and the wire
types shared between the service and its clients.

# Overview

Stash keeps accounts and short-lived clips. Accounts authenticate with a
name and password; a successful register or login sets an HTTP-only session
cookie that the Client keeps in its cookie jar and sends on later calls.

	client, err := stashsdk.NewClient("https://stash.example.com")

	// Create an account, the session cookie is stored automatically
	acc, err := client.Register(ctx, "alice", "correct horse battery staple")

	// Who am I?
	me, err := client.Me(ctx)

	// End the session
	err = client.Logout(ctx)

# Clips

Clips are addressed by a four digit code. A clip sent with a passphrase is
stored encrypted and can only be read back through OpenClip:

	sent, err := client.SendClip(ctx, "hello world", "swordfish")

	clip, err := client.GetClip(ctx, sent.Code)
	// err is *APIError with Code ErrorCodePassphraseRequired

	clip, err = client.OpenClip(ctx, sent.Code, "swordfish")

Passphrases and passwords are only ever sent in form bodies.

# Errors

Every non-2xx response is returned as *APIError carrying the HTTP status,
the machine readable error code and a description. Compare codes with the
ErrorCode* constants:

	var apiErr *stashsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == stashsdk.ErrorCodeInvalidCredentials {
		// wrong name or password
	}
*/
package stashsdk
