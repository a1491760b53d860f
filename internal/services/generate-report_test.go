// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/LerianStudio/sales-report/pkg/datasource"
	"github.com/LerianStudio/sales-report/pkg/model"
	"github.com/LerianStudio/sales-report/pkg/pdf"
	"github.com/LerianStudio/sales-report/pkg/pongo"
	"github.com/LerianStudio/sales-report/pkg/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"
)

var (
	fixedNow   = time.Date(2024, 1, 31, 15, 30, 0, 0, time.UTC)
	fakePDF    = []byte("%PDF-1.4 fake document")
	fakeURL    = "https://bucket-sample-lambda-pdf.s3.amazonaws.com/relatorio_20240131_153000.pdf?X-Amz-Expires=3600"
	reportName = "relatorio_20240131_153000.pdf"
)

func januaryRequest(t *testing.T) model.ReportRequest {
	t.Helper()

	start, err := model.ParseDate("2024-01-01")
	require.NoError(t, err)

	end, err := model.ParseDate("2024-01-31")
	require.NoError(t, err)

	return model.ReportRequest{StartDate: start, EndDate: end}
}

func TestUseCase_GenerateReport_StubScenario(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPdf := pdf.NewMockPDFGenerator(ctrl)
	mockStorage := storage.NewMockObjectStorage(ctrl)

	renderer, err := pongo.NewSalesReportRenderer()
	require.NoError(t, err)

	useCase := &UseCase{
		DataSource: datasource.NewStubRepository(func() time.Time { return fixedNow }),
		Renderer:   renderer,
		PdfPool:    mockPdf,
		Storage:    mockStorage,
		Location:   time.UTC,
		Now:        func() time.Time { return fixedNow },
	}

	var renderedHTML string

	mockPdf.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, html string) ([]byte, error) {
			renderedHTML = html
			return fakePDF, nil
		})

	gomock.InOrder(
		mockStorage.EXPECT().
			Upload(gomock.Any(), reportName, gomock.Any(), "application/pdf").
			DoAndReturn(func(_ context.Context, key string, reader io.Reader, _ string) (string, error) {
				body, err := io.ReadAll(reader)
				require.NoError(t, err)
				assert.Equal(t, fakePDF, body)

				return key, nil
			}),
		mockStorage.EXPECT().
			GeneratePresignedURL(gomock.Any(), reportName, time.Hour).
			Return(fakeURL, nil),
	)

	result, err := useCase.GenerateReport(context.Background(), januaryRequest(t))

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Relatório gerado com sucesso", result.Message)
	assert.Equal(t, fakeURL, result.DownloadURL)

	assert.Contains(t, renderedHTML, "Relatório de Vendas")
	assert.Contains(t, renderedHTML, "Gerado em: 31/01/2024 15:30:00")
	assert.Contains(t, renderedHTML, "Total de Vendas: R$ 1.500,00")
	assert.Contains(t, renderedHTML, "<td>Produto A</td><td>10</td><td>R$ 1.000,00</td>")
	assert.Contains(t, renderedHTML, "<td>30/01/2024</td><td>Produto B</td><td>5</td><td>R$ 500,00</td>")
	assert.Equal(t, 2, strings.Count(renderedHTML, `class="sale-row"`))
	assert.Equal(t, 1, strings.Count(renderedHTML, `class="header-row"`))
}

func TestUseCase_GenerateReport_EmptyDataSource(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockData := datasource.NewMockRepository(ctrl)
	mockRenderer := pongo.NewMockHTMLRenderer(ctrl)
	mockPdf := pdf.NewMockPDFGenerator(ctrl)
	mockStorage := storage.NewMockObjectStorage(ctrl)

	useCase := &UseCase{
		DataSource: mockData,
		Renderer:   mockRenderer,
		PdfPool:    mockPdf,
		Storage:    mockStorage,
		Now:        func() time.Time { return fixedNow },
		Location:   time.UTC,
	}

	request := januaryRequest(t)

	mockData.EXPECT().FetchSales(gomock.Any(), request.StartDate, request.EndDate).Return([]model.SaleRecord{}, nil)
	mockRenderer.EXPECT().
		Render(gomock.Any()).
		DoAndReturn(func(doc model.SalesDocument) (string, error) {
			assert.Empty(t, doc.Rows)
			assert.Equal(t, "Total de Vendas: R$ 0,00", doc.Total)

			return "<html></html>", nil
		})
	mockPdf.EXPECT().Generate(gomock.Any(), "<html></html>").Return(fakePDF, nil)
	mockStorage.EXPECT().Upload(gomock.Any(), reportName, gomock.Any(), "application/pdf").Return(reportName, nil)
	mockStorage.EXPECT().GeneratePresignedURL(gomock.Any(), reportName, time.Hour).Return(fakeURL, nil)

	result, err := useCase.GenerateReport(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, fakeURL, result.DownloadURL)
}

func TestUseCase_GenerateReport_PassesBoundsUntouched(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockData := datasource.NewMockRepository(ctrl)

	useCase := &UseCase{DataSource: mockData}

	// end before start is not rejected
	request := model.ReportRequest{
		StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	fetchErr := errors.New("stop here")
	mockData.EXPECT().FetchSales(gomock.Any(), request.StartDate, request.EndDate).Return(nil, fetchErr)

	_, err := useCase.GenerateReport(context.Background(), request)

	assert.ErrorIs(t, err, fetchErr)
}

func TestUseCase_GenerateReport_Errors(t *testing.T) {
	t.Parallel()

	records := []model.SaleRecord{
		{Date: fixedNow, ProductName: "Produto A", Quantity: 10, TotalValue: decimal.NewFromInt(1000)},
	}

	fetchErr := errors.New("sales database unreachable")
	renderErr := errors.New("template execution failed")
	pdfErr := errors.New("chrome crashed")
	uploadErr := errors.New("access denied")
	presignErr := errors.New("invalid credentials")

	tests := []struct {
		name        string
		setupMocks  func(data *datasource.MockRepository, renderer *pongo.MockHTMLRenderer, pdfGen *pdf.MockPDFGenerator, store *storage.MockObjectStorage)
		expectedErr error
	}{
		{
			name: "Error - data source fails, nothing rendered",
			setupMocks: func(data *datasource.MockRepository, _ *pongo.MockHTMLRenderer, _ *pdf.MockPDFGenerator, _ *storage.MockObjectStorage) {
				data.EXPECT().FetchSales(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fetchErr)
			},
			expectedErr: fetchErr,
		},
		{
			name: "Error - layout fails, nothing uploaded",
			setupMocks: func(data *datasource.MockRepository, renderer *pongo.MockHTMLRenderer, _ *pdf.MockPDFGenerator, _ *storage.MockObjectStorage) {
				data.EXPECT().FetchSales(gomock.Any(), gomock.Any(), gomock.Any()).Return(records, nil)
				renderer.EXPECT().Render(gomock.Any()).Return("", renderErr)
			},
			expectedErr: renderErr,
		},
		{
			name: "Error - PDF printing fails, nothing uploaded",
			setupMocks: func(data *datasource.MockRepository, renderer *pongo.MockHTMLRenderer, pdfGen *pdf.MockPDFGenerator, _ *storage.MockObjectStorage) {
				data.EXPECT().FetchSales(gomock.Any(), gomock.Any(), gomock.Any()).Return(records, nil)
				renderer.EXPECT().Render(gomock.Any()).Return("<html></html>", nil)
				pdfGen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, pdfErr)
			},
			expectedErr: pdfErr,
		},
		{
			name: "Error - upload fails, no link issued",
			setupMocks: func(data *datasource.MockRepository, renderer *pongo.MockHTMLRenderer, pdfGen *pdf.MockPDFGenerator, store *storage.MockObjectStorage) {
				data.EXPECT().FetchSales(gomock.Any(), gomock.Any(), gomock.Any()).Return(records, nil)
				renderer.EXPECT().Render(gomock.Any()).Return("<html></html>", nil)
				pdfGen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(fakePDF, nil)
				store.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", uploadErr)
			},
			expectedErr: uploadErr,
		},
		{
			name: "Error - presign fails after upload",
			setupMocks: func(data *datasource.MockRepository, renderer *pongo.MockHTMLRenderer, pdfGen *pdf.MockPDFGenerator, store *storage.MockObjectStorage) {
				data.EXPECT().FetchSales(gomock.Any(), gomock.Any(), gomock.Any()).Return(records, nil)
				renderer.EXPECT().Render(gomock.Any()).Return("<html></html>", nil)
				pdfGen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(fakePDF, nil)
				store.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(reportName, nil)
				store.EXPECT().GeneratePresignedURL(gomock.Any(), reportName, time.Hour).Return("", presignErr)
			},
			expectedErr: presignErr,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockData := datasource.NewMockRepository(ctrl)
			mockRenderer := pongo.NewMockHTMLRenderer(ctrl)
			mockPdf := pdf.NewMockPDFGenerator(ctrl)
			mockStorage := storage.NewMockObjectStorage(ctrl)

			tt.setupMocks(mockData, mockRenderer, mockPdf, mockStorage)

			useCase := &UseCase{
				DataSource: mockData,
				Renderer:   mockRenderer,
				PdfPool:    mockPdf,
				Storage:    mockStorage,
				Now:        func() time.Time { return fixedNow },
			}

			result, err := useCase.GenerateReport(context.Background(), januaryRequest(t))

			assert.Nil(t, result)
			require.Error(t, err)
			assert.Equal(t, tt.expectedErr, err)
		})
	}
}

func TestUseCase_Presign_ExpiresOneHourAfterIssue(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := storage.NewMockObjectStorage(ctrl)
	useCase := &UseCase{
		Storage:  mockStorage,
		Now:      func() time.Time { return fixedNow },
		Location: time.UTC,
	}

	mockStorage.EXPECT().GeneratePresignedURL(gomock.Any(), reportName, time.Hour).Return(fakeURL, nil)

	link, err := useCase.presign(context.Background(), noop.NewTracerProvider().Tracer("test"), reportName)

	require.NoError(t, err)
	assert.Equal(t, fakeURL, link.URL)
	assert.Equal(t, fixedNow.Add(time.Hour), link.ExpiresAt)
}

func TestUseCase_Now_UsesLocation(t *testing.T) {
	t.Parallel()

	zone := time.FixedZone("BRT", -3*60*60)
	useCase := &UseCase{
		Now:      func() time.Time { return fixedNow },
		Location: zone,
	}

	now := useCase.now()

	assert.Equal(t, zone, now.Location())
	assert.Equal(t, 12, now.Hour())
	assert.Equal(t, "relatorio_20240131_123000.pdf", ReportFileName(now))
}
