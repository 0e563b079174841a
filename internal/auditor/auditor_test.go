package auditor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/audittax/audittax/internal/entity"
)

const validResult = `{
	"summary": {"total": 2, "compliant": 1, "divergent": 1},
	"items": [
		{"item_index": 1, "product_code": "P001", "product_name": "Parafuso", "status": "compliant", "issues": []},
		{"item_index": 2, "product_code": "P002", "product_name": "Porca", "status": "divergent", "issues": ["aliquota divergente"],
		 "details": {"quantity": 10, "unit_price": 1.5, "tax_rate": 18}}
	],
	"invoice_header": {"document_key": "35200114200166000187550010000000046550000046"}
}`

func TestValidateResultAccepts(t *testing.T) {
	require.NoError(t, ValidateResult([]byte(validResult)))
}

func TestValidateResultRejects(t *testing.T) {
	cases := map[string]string{
		"missing summary": `{"items": []}`,
		"missing items":   `{"summary": {"total": 0, "compliant": 0, "divergent": 0}}`,
		"bad status":      `{"summary": {"total": 1, "compliant": 1, "divergent": 0}, "items": [{"item_index": 1, "product_code": "P", "product_name": "P", "status": "ok"}]}`,
		"negative total":  `{"summary": {"total": -1, "compliant": 0, "divergent": 0}, "items": []}`,
		"not json":        `<xml/>`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			require.Error(t, ValidateResult([]byte(payload)))
		})
	}
}

func TestHTTPEngineAudit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(validResult))
	}))
	defer srv.Close()

	e := NewHTTPEngine(srv.URL, "", srv.Client(), nil)
	bundle, err := e.Audit(context.Background(), entity.Document{Filename: "nota.xml", Content: []byte("<nfe/>")})
	require.NoError(t, err)
	require.Equal(t, 2, bundle.Summary.Total)
	require.Len(t, bundle.Items, 2)
	require.NotNil(t, bundle.Items[1].Detail)
	require.Equal(t, 18.0, bundle.Items[1].Detail.TaxRate)
}

func TestHTTPEngineNon2xxIsJobError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "engine down", http.StatusBadGateway)
	}))
	defer srv.Close()

	e := NewHTTPEngine(srv.URL, "", srv.Client(), nil)
	_, err := e.Audit(context.Background(), entity.Document{Filename: "nota.xml"})
	require.Error(t, err)
	require.True(t, entity.IsKind(err, entity.KindJob))
}

func TestHTTPEngineRejectsMalformedResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer srv.Close()

	e := NewHTTPEngine(srv.URL, "", srv.Client(), nil)
	_, err := e.Audit(context.Background(), entity.Document{Filename: "nota.xml"})
	require.Error(t, err)
	require.True(t, entity.IsKind(err, entity.KindJob))
}

const sampleNFe = `<?xml version="1.0" encoding="UTF-8"?>
<nfeProc xmlns="http://www.portalfiscal.inf.br/nfe">
  <NFe>
    <infNFe Id="NFe35200114200166000187550010000000046550000046">
      <det nItem="1"><prod><cProd>P001</cProd></prod></det>
      <det nItem="2"><prod><cProd>P002</cProd></prod></det>
      <det nItem="3"><prod><cProd>P003</cProd></prod></det>
    </infNFe>
  </NFe>
</nfeProc>`

func TestParseDocument(t *testing.T) {
	key, total, err := ParseDocument([]byte(sampleNFe))
	require.NoError(t, err)
	require.Equal(t, "35200114200166000187550010000000046550000046", key)
	require.Equal(t, 3, total)
}

func TestParseDocumentBareNFe(t *testing.T) {
	bare := `<NFe xmlns="http://www.portalfiscal.inf.br/nfe">
	  <infNFe Id="NFe35200114200166000187550010000000046550000046">
	    <det nItem="1"/>
	  </infNFe>
	</NFe>`
	key, total, err := ParseDocument([]byte(bare))
	require.NoError(t, err)
	require.Equal(t, "35200114200166000187550010000000046550000046", key)
	require.Equal(t, 1, total)
}

func TestParseDocumentRejectsGarbage(t *testing.T) {
	_, _, err := ParseDocument([]byte("not xml at all"))
	require.Error(t, err)
}
