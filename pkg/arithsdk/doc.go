/*
Package arithsdk is a Go client for the arith service.

A Client covers the public endpoints and opens Sessions:

	client := arithsdk.NewClient("http://localhost:8000")

	if _, err := client.Register(ctx, "alice", "correct-horse", nil); err != nil {
		return err
	}

	session, err := client.Login(ctx, "alice", "correct-horse")
	if err != nil {
		return err
	}

	sum, err := session.Add(ctx, 2, 3) // sum.Result == 5
	history, err := session.History(ctx)

Every failed call returns an *APIError. Compare with the predefined values:

	_, err := session.Sqrt(ctx, -1)
	if errors.Is(err, arithsdk.ErrDomainError) {
		// negative input
	}

Access tokens expire after the server's configured TTL and there is no
refresh grant; log in again when a call returns ErrTokenExpired.
*/
package arithsdk
