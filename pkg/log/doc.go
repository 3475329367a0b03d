/*
Package log provides structured logging for rlvm using zerolog.

Every rlvm process calls Init once from its cobra PersistentPreRun with the
values of --log-level and --log-json. Packages then derive child loggers that
carry a fixed field:

	logger := log.WithComponent("volumed")
	logger.Info().Str("name", name).Uint64("capacity", size).Msg("Creating logical volume")

	vlog := log.WithVolumeID(id)
	vlog.Warn().Err(err).Msg("Volume not staged")

The helpers return a zerolog.Logger value. Its level methods take a pointer
receiver, so bind the result to a variable before logging.

Console output is the default and suits journald; JSON output is meant for
collectors that parse structured records. Logs go to stderr so they never
mix with command output.
*/
package log
