package cae

const ratesPage = `<!DOCTYPE html>
<html lang="en" dir="ltr">
<body class="path-fx-rates">
<main role="main" class="outer-wrapper">
    <div class="container">
        <div class="row">
            <div class="col-12">
                <div class="pb-4">
                    <div class="dropdown" id="ratesDatePickerDropDown">
                        <a href="#" id="ratesDatePicker" data-toggle="dropdown" aria-haspopup="true"
                           aria-expanded="false">
                            <h3 class="m-0">
                <span class="badge badge-light d-inline-flex align-items-center py-0">
                  <span>Date12-08-2021</span>
                  <i class="icon-arrow-down-2" style="font-size: 8px; margin-left: 8px;"></i>
                </span>
                            </h3>
                        </a>
                    </div>
                    <div class="text-muted"><small>Last updated <span class="dir-ltr">12 Aug 2021 6:00PM</span></small>
                    </div>
                </div>

                <table id="ratesDateTable" class="table table-striped table-bordered table-eibor text-center">
                    <thead>
                    <tr>
                        <th>Currency</th>
                        <th>Rate</th>
                    </tr>
                    </thead>
                    <tbody>
                    <tr>
                        <td>US Dollar</td>
                        <td>3.672500</td>
                    </tr>
                    <tr>
                        <td>Moroccan   Dirham</td>
                        <td>0.400000</td>
                    </tr>
                    <tr>
                        <td>Euro</td>
                        <td>4.300000</td>
                    </tr>
                    <tr>
                        <td>Venezuelan Bolivar</td>
                        <td>0.000001</td>
                    </tr>
                    </tbody>
                </table>
            </div>
        </div>
    </div>
</main>
</body>
</html>
`
