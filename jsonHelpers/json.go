package jsonHelpers

import "encoding/json"

func DesserializarJson[Para any](bytes []byte) (Para, error) {
	para := new(Para)
	err := json.Unmarshal(bytes, para)
	return *para, err
}

func SerializarJson[De any](valor De) ([]byte, error) {
	return json.Marshal(valor)
}

func SerializarJsonIdentado[De any](valor De) ([]byte, error) {
	return json.MarshalIndent(valor, "", "  ")
}
