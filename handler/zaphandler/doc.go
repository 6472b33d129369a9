// Package zaphandler plugs a named logger in as a zapcore.Core, so
// libraries that log with zap end up in the same registry and obey the
// same level changes:
//
//	z := zaphandler.NewLogger(logger.Default(), "vendor")
//	z.Named("client").Info("connected", zap.String("addr", addr))
//
// The second call logs through "vendor.client".
package zaphandler
