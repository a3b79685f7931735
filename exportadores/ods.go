package exportadores

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"geodatabr/modelos/lugares"

	"github.com/pkg/errors"
)

// ExportadorOds monta o pacote ODF mínimo de uma planilha: a entrada
// mimetype sem compressão em primeiro lugar, o manifesto e o
// content.xml com uma tabela por nível.
type ExportadorOds struct{}

func (ExportadorOds) Nome() string { return "ods" }

const mimeOds = "application/vnd.oasis.opendocument.spreadsheet"

const manifestoOds = `<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
 <manifest:file-entry manifest:full-path="/" manifest:media-type="` + mimeOds + `"/>
 <manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
</manifest:manifest>
`

func (e ExportadorOds) Exportar(b *lugares.Base, saida string) ([]Artefato, error) {
	var buffer bytes.Buffer
	escritor := zip.NewWriter(&buffer)

	// O mimetype precisa ser a primeira entrada e ficar sem compressão
	// para os leitores de ODF reconhecerem o pacote.
	cabecalho := &zip.FileHeader{Name: "mimetype", Method: zip.Store}
	entrada, err := escritor.CreateHeader(cabecalho)
	if err != nil {
		return nil, errors.Wrap(err, "falha em criar a entrada mimetype")
	}
	if _, err := entrada.Write([]byte(mimeOds)); err != nil {
		return nil, errors.Wrap(err, "falha em escrever o mimetype")
	}

	entrada, err = escritor.Create("META-INF/manifest.xml")
	if err != nil {
		return nil, errors.Wrap(err, "falha em criar o manifesto ODF")
	}
	if _, err := entrada.Write([]byte(manifestoOds)); err != nil {
		return nil, errors.Wrap(err, "falha em escrever o manifesto ODF")
	}

	entrada, err = escritor.Create("content.xml")
	if err != nil {
		return nil, errors.Wrap(err, "falha em criar o content.xml")
	}
	if _, err := entrada.Write([]byte(conteudoOds(b))); err != nil {
		return nil, errors.Wrap(err, "falha em escrever o content.xml")
	}

	if err := escritor.Close(); err != nil {
		return nil, errors.Wrap(err, "falha em finalizar o pacote ODF")
	}

	return salvarEMedir(e.Nome(), saida, "dataset.ods", buffer.Bytes())
}

func conteudoOds(b *lugares.Base) string {
	var conteudo strings.Builder
	conteudo.WriteString(xml.Header)
	conteudo.WriteString(`<office:document-content` +
		` xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"` +
		` xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0"` +
		` xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"` +
		` office:version="1.2"><office:body><office:spreadsheet>`)

	for _, tabela := range b.Tabelas() {
		fmt.Fprintf(&conteudo, `<table:table table:name="%s">`, tabela.Nome)

		conteudo.WriteString("<table:table-row>")
		for _, coluna := range tabela.Colunas {
			escreverCelulaOds(&conteudo, coluna)
		}
		conteudo.WriteString("</table:table-row>")

		for _, linha := range tabela.Linhas {
			conteudo.WriteString("<table:table-row>")
			for _, valor := range linha {
				switch v := valor.(type) {
				case int64:
					fmt.Fprintf(&conteudo,
						`<table:table-cell office:value-type="float" office:value="%d"><text:p>%d</text:p></table:table-cell>`,
						v, v)
				default:
					escreverCelulaOds(&conteudo, valorTexto(valor))
				}
			}
			conteudo.WriteString("</table:table-row>")
		}

		conteudo.WriteString("</table:table>")
	}

	conteudo.WriteString("</office:spreadsheet></office:body></office:document-content>")
	return conteudo.String()
}

func escreverCelulaOds(conteudo *strings.Builder, texto string) {
	conteudo.WriteString(`<table:table-cell office:value-type="string"><text:p>`)
	_ = xml.EscapeText(conteudo, []byte(texto))
	conteudo.WriteString("</text:p></table:table-cell>")
}
