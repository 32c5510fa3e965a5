// Package search construye los criterios de búsqueda paginada compartidos por clientes y facturas.
//
// Los parámetros crudos de la URL (page, limit, id, startDate, endDate) se convierten en una
// lista de predicados tipados (DateRange, DateFrom, DateTo, ExactID) más una ventana de
// paginación. Cada almacenamiento traduce esa lista a su propia forma de consulta.
package search
