/*
Package client dials the privileged rlvm authorities over their unix sockets.

The controller and node services each hold one Client for the lifetime of the
process and hand its typed stub to every request through an injection
interceptor:

	c, err := client.NewClient("/run/rlvm/volumed.sock")
	if err != nil {
		return err
	}
	defer c.Close()

	vc := c.Volumed()
	srv := api.NewServer(socket, func(ctx context.Context) (context.Context, error) {
		return volumed.NewContext(ctx, vc), nil
	})

Connections carry no transport security; the authorities rely on unix socket
file permissions instead. Messages are the protobuf types generated into
api/volumed and api/mountd.
*/
package client
