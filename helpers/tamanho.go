package helpers

import "fmt"

// TamanhoLegivel formata uma quantidade de bytes para os logs e para o
// manifesto, no maior múltiplo inteiro que couber.
func TamanhoLegivel(bytes int64) string {
	switch {
	case bytes >= 1024*1024:
		return fmt.Sprintf("%dMB", bytes/(1024*1024))
	case bytes >= 1024:
		return fmt.Sprintf("%dKB", bytes/1024)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}
