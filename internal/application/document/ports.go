package document

// BlobStore almacenamiento externo de bytes de documentos, direccionado por un
// locator opaco generado al guardar (escritura única por locator). El núcleo
// nunca inspecciona el contenido: solo registra el locator y los metadatos que
// el store devuelve.
type BlobStore interface {
	// Store persiste los bytes y devuelve (locator, mime detectado, tamaño).
	Store(content []byte, originalFilename string) (locator, mime string, size int64, err error)
	// Read devuelve los bytes del locator, o domain.ErrNotFound si el blob no existe.
	Read(locator string) ([]byte, error)
}
